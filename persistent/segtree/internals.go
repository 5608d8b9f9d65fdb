package segtree

import "fmt"

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("segtree: "+msg, msgargs...)
		panic(msg)
	}
}

// midpoint returns the mean of lo and hi, off by at most one half. It does not overflow
// for domains close to the limits of int. For lo < hi-1 it is strictly between lo and hi.
func midpoint(lo, hi int) int {
	return lo/2 + hi/2 + (lo%2+hi%2)/2
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
