package sortedmap

import (
	"errors"
)

// Errors used by the package.
var (
	ErrNilCompare = errors.New("sorted map compare function is nil")
)
