package versions

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/persum/persistent/segtree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(1, 9)
	require.NoError(t, err)
	assert.Equal(t, 1, ix.Len())
	lo, hi := ix.Domain()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)
	sum, err := ix.Query(0, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
	assert.Equal(t, 0, ix.Latest())
}

func TestIndexCreateEmptyDomain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	for _, d := range [][2]int{{5, 5}, {9, 1}} {
		ix, err := Create(d[0], d[1])
		assert.Nil(t, ix)
		assert.True(t, errors.Is(err, ErrEmptyDomain), "expected ErrEmptyDomain for [%d,%d), got %v", d[0], d[1], err)
	}
}

func TestIndexLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(0, 8)
	require.NoError(t, err)
	_, err = ix.Apply(0, 5, 3)
	require.NoError(t, err)
	assert.False(t, ix.Lookup(1).IsNothing())
	assert.True(t, ix.Lookup(2).IsNothing())
	assert.True(t, ix.Lookup(-1).IsNothing())
	var root segtree.Tree
	switch m := ix.Lookup(1).Match(); m {
	case m.Just(&root):
		assert.Equal(t, int64(3), root.Total())
	case m.Nothing():
		t.Error("expected version 1 to be present, isn't")
	}
}

func TestIndexDomainAtLimitsOfInt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(math.MaxInt-2, math.MaxInt)
	require.NoError(t, err)
	v, err := ix.Apply(0, math.MaxInt-1, 1)
	require.NoError(t, err)
	sum, err := ix.Query(v, math.MaxInt-1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum)
	sum, err = ix.Query(v, math.MaxInt-2, math.MaxInt-1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
	root, err := ix.Root(v)
	require.NoError(t, err)
	assert.NoError(t, root.Check())
	_, err = ix.Apply(0, math.MaxInt, 1)
	assert.True(t, errors.Is(err, ErrPositionOutOfDomain))
}

func TestIndexCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(0, 4, Capacity(32))
	require.NoError(t, err)
	assert.Equal(t, 1, ix.Len())
	assert.GreaterOrEqual(t, cap(ix.roots), 32)
}

// Versions 1…5 over [1,9), each derived from its predecessor.
func TestIndexScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(1, 9)
	require.NoError(t, err)
	updates := []struct {
		position int
		delta    int64
		total    int64
	}{
		{2, 1, 1},
		{4, 1, 2},
		{5, 1, 3},
		{7, 1, 4},
		{8, 10, 14},
	}
	for i, u := range updates {
		v, err := ix.Apply(i, u.position, u.delta)
		require.NoError(t, err)
		require.Equal(t, i+1, v)
		sum, err := ix.Query(v, 1, 9)
		require.NoError(t, err)
		assert.Equal(t, u.total, sum, "version %d", v)
	}
	sum, err := ix.Query(1, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum, "version 1 has to be unaffected by later versions")
	if diff := cmp.Diff([]int64{0, 1, 2, 3, 4, 14}, ix.History(1, 9)); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, ix.Latest())
}

func TestIndexVersionOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(0, 8)
	require.NoError(t, err)
	for _, v := range []int{-1, 1, 17} {
		_, err = ix.Apply(v, 3, 1)
		assert.True(t, errors.Is(err, ErrVersionOutOfRange), "apply on version %d: %v", v, err)
		_, err = ix.Query(v, 0, 8)
		assert.True(t, errors.Is(err, ErrVersionOutOfRange), "query on version %d: %v", v, err)
		_, err = ix.Root(v)
		assert.True(t, errors.Is(err, ErrVersionOutOfRange), "root of version %d: %v", v, err)
	}
	assert.Equal(t, 1, ix.Len(), "failed updates must not create versions")
}

func TestIndexPositionOutOfDomain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(1, 9)
	require.NoError(t, err)
	for _, pos := range []int{0, 9, -4, 100} {
		_, err = ix.Apply(0, pos, 1)
		assert.True(t, errors.Is(err, ErrPositionOutOfDomain), "position %d: %v", pos, err)
	}
	assert.Equal(t, 1, ix.Len())
	sum, err := ix.Query(0, -100, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
}

func TestIndexSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	defer teardown()
	//
	ix, err := Create(0, 16)
	require.NoError(t, err)
	v, err := ix.Apply(0, 9, 5)
	require.NoError(t, err)
	old, err := ix.Root(0)
	require.NoError(t, err)
	cow, err := ix.Root(v)
	require.NoError(t, err)
	// 31 nodes, 5 of them on the path to 9
	assert.Equal(t, 26, cow.SharedWith(old))
	assert.NoError(t, cow.Check())
}

// Versions branching off arbitrary earlier versions, checked against a brute-force model.
func TestIndexBranchingAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const lo, hi = -8, 25
	ix, err := Create(lo, hi)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(7))
	models := []map[int]int64{{}}
	for i := 0; i < 150; i++ {
		base := rnd.Intn(len(models))
		pos := lo + rnd.Intn(hi-lo)
		delta := int64(rnd.Intn(9) - 4)
		v, err := ix.Apply(base, pos, delta)
		require.NoError(t, err)
		require.Equal(t, len(models), v)
		model := make(map[int]int64, len(models[base])+1)
		for p, x := range models[base] {
			model[p] = x
		}
		model[pos] += delta
		models = append(models, model)
	}
	for q := 0; q < 300; q++ {
		v := rnd.Intn(len(models))
		qlo, qhi := lo-1+rnd.Intn(hi-lo+2), lo-1+rnd.Intn(hi-lo+2)
		var want int64
		for p, x := range models[v] {
			if qlo <= p && p < qhi {
				want += x
			}
		}
		got, err := ix.Query(v, qlo, qhi)
		require.NoError(t, err)
		require.Equal(t, want, got, "version %d, range [%d,%d)", v, qlo, qhi)
	}
}

func TestIndexConcurrentReadersAndWriters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persum.versions")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	ix, err := Create(0, 64)
	require.NoError(t, err)
	const writers, updates = 4, 50
	var wg sync.WaitGroup
	versionsSeen := make(chan int, writers*updates)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < updates; i++ {
				v, err := ix.Apply(0, (w*updates+i)%64, 1)
				if err != nil {
					t.Error(err)
					return
				}
				versionsSeen <- v
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < updates; i++ {
				if sum, err := ix.Query(0, 0, 64); err != nil || sum != 0 {
					t.Errorf("expected version 0 to stay 0, is %d (%v)", sum, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(versionsSeen)
	unique := make(map[int]bool)
	for v := range versionsSeen {
		assert.False(t, unique[v], "version %d handed out twice", v)
		unique[v] = true
	}
	assert.Equal(t, writers*updates+1, ix.Len())
	for v := 1; v < ix.Len(); v++ {
		sum, err := ix.Query(v, 0, 64)
		require.NoError(t, err)
		assert.Equal(t, int64(1), sum, "every version is derived from version 0 by a single update")
	}
}
