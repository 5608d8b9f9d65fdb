package versions

import "errors"

var (
	// ErrEmptyDomain signals an attempt to create an index over an empty domain.
	ErrEmptyDomain = errors.New("versions: empty domain")
	// ErrVersionOutOfRange signals a reference to a version which does not exist.
	ErrVersionOutOfRange = errors.New("versions: version out of range")
	// ErrPositionOutOfDomain signals an update at a position outside of the index domain.
	ErrPositionOutOfDomain = errors.New("versions: position out of domain")
)
