package densemap

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrRangeExceeded is returned if a key lies beyond a configured limit or, for a FixedMap, beyond the materialized
	// range.
	ErrRangeExceeded = ierrors.New("range exceeded")

	// ErrNotFound is returned if a key lies outside the materialized range of a map.
	ErrNotFound = ierrors.New("key not found")

	// ErrNotContiguous is returned if entries do not form an ascending run of consecutive keys.
	ErrNotContiguous = ierrors.New("entries are not contiguous")
)
