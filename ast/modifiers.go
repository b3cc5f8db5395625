package ast

import (
	"slices"
	"strings"
)

// Modifiers is a sorted set of modifier keywords such as "public" or
// "static".
type Modifiers []string

func NewModifiers(ms ...string) Modifiers {
	if len(ms) == 0 {
		return nil
	}
	res := slices.Clone(ms)
	slices.Sort(res)
	return slices.Compact(res)
}

func (m Modifiers) Has(v string) bool {
	_, found := slices.BinarySearch(m, v)
	return found
}

func (m Modifiers) Equal(o Modifiers) bool {
	return slices.Equal(m, o)
}

func (m Modifiers) String() string {
	return "{" + strings.Join(m, ", ") + "}"
}
