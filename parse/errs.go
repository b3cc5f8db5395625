package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrEmpty       = fmt.Errorf("%w: empty document", ErrParse)
	ErrMissingKind = fmt.Errorf("%w: node without kind", ErrParse)
)
