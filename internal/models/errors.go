package models

import (
	"errors"
)

// ErrStaleAnalysis marks a styling pass whose deck was invalidated while
// classification was in flight. The result is discarded, nothing is written
// back.
var ErrStaleAnalysis = errors.New("styling: analysis superseded")
