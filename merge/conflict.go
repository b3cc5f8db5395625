package merge

import (
	"errors"
	"fmt"

	"github.com/alvawei/smerge-sub000/ast"
)

var ErrConflict = errors.New("merge conflict")

// ConflictError describes the hard conflict which stopped a merge.  Index
// is the base arena index where the walk was when it hit the conflict.
type ConflictError struct {
	Index  int
	Kind   ast.Kind
	Path   string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrConflict, e.Path, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// Outcome is the state of a merge.  A merge starts Unresolved and ends
// either Merged or Conflicted.
type Outcome int

const (
	Unresolved Outcome = iota
	Merged
	Conflicted
)

func (o Outcome) String() string {
	switch o {
	case Unresolved:
		return "unresolved"
	case Merged:
		return "merged"
	case Conflicted:
		return "conflicted"
	default:
		return "<unknown outcome>"
	}
}
