package oracle

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks shapes the oracle deliberately refuses to
// judge. Callers must be able to tell "spec says no" (a plain false)
// apart from "this comparison is unsupported".
var ErrNotImplemented = errors.New("not implemented")

// ResolutionError reports a $ref that is malformed or points outside
// the known reference spaces.
type ResolutionError struct {
	Ref string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve reference %q", e.Ref)
}
