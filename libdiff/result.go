package libdiff

import (
	"maps"
	"slices"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/flat"
)

// Result is the edit script turning From into To.  All keys are indices of
// From; values which refer to nodes of the edited tree are indices of To.
// A Result is read only once Diff returns it.
//
// An index of From is never both deleted and replaced.  Indices which are
// neither are kept, possibly with new attributes.
type Result struct {
	From, To *flat.Tree

	// Cost is the edit distance found by the dynamic program.
	Cost int

	deleted    map[int]bool
	replaced   map[int]int
	replacedBy map[int]int
	inserts    map[int]map[int][]int
	modifiers  map[int]ast.Modifiers
	comments   map[int]string

	aligned   map[int]int
	alignedTo map[int]int
	inserted  map[int]bool
}

func newResult(from, to *flat.Tree) *Result {
	return &Result{
		From:       from,
		To:         to,
		deleted:    map[int]bool{},
		replaced:   map[int]int{},
		replacedBy: map[int]int{},
		inserts:    map[int]map[int][]int{},
		modifiers:  map[int]ast.Modifiers{},
		comments:   map[int]string{},
		aligned:    map[int]int{},
		alignedTo:  map[int]int{},
		inserted:   map[int]bool{},
	}
}

// Empty reports whether the script makes no change at all.
func (r *Result) Empty() bool {
	return len(r.deleted) == 0 && len(r.replaced) == 0 && len(r.inserts) == 0 &&
		len(r.modifiers) == 0 && len(r.comments) == 0
}

func (r *Result) Deleted(i int) bool {
	return r.deleted[i]
}

// Replacement returns the index in To of the node replacing i.
func (r *Result) Replacement(i int) (int, bool) {
	j, ok := r.replaced[i]
	return j, ok
}

// ReplacementNode returns the node of the edited tree replacing i.
func (r *Result) ReplacementNode(i int) *ast.Node {
	j, ok := r.replaced[i]
	if !ok {
		return nil
	}
	return r.To.Entry(j).Node
}

// Inserts returns the inserts into the list with wrapper w, keyed by the
// position in the base list before which they go.  The map must not be
// modified.
func (r *Result) Inserts(w int) map[int][]int {
	return r.inserts[w]
}

// InsertNodes returns the nodes of the edited tree for an insert run.
func (r *Result) InsertNodes(run []int) []*ast.Node {
	res := make([]*ast.Node, len(run))
	for k, j := range run {
		res[k] = r.To.Entry(j).Node
	}
	return res
}

func (r *Result) Modifiers(i int) (ast.Modifiers, bool) {
	m, ok := r.modifiers[i]
	return m, ok
}

func (r *Result) Comment(i int) (string, bool) {
	c, ok := r.comments[i]
	return c, ok
}

// Aligned returns the index in To of the node kept in place of i, when i
// is neither deleted nor replaced and was matched.
func (r *Result) Aligned(i int) (int, bool) {
	j, ok := r.aligned[i]
	return j, ok
}

// Touches reports whether the script mentions i at all: deletes it,
// replaces it, changes its attributes or inserts into it.
func (r *Result) Touches(i int) bool {
	if r.deleted[i] {
		return true
	}
	if _, ok := r.replaced[i]; ok {
		return true
	}
	if _, ok := r.modifiers[i]; ok {
		return true
	}
	if _, ok := r.comments[i]; ok {
		return true
	}
	_, ok := r.inserts[i]
	return ok
}

func (r *Result) DeletedIndices() []int {
	return slices.Sorted(maps.Keys(r.deleted))
}

func (r *Result) ReplacedIndices() []int {
	return slices.Sorted(maps.Keys(r.replaced))
}

func (r *Result) InsertWrappers() []int {
	return slices.Sorted(maps.Keys(r.inserts))
}

func (r *Result) ModifierIndices() []int {
	return slices.Sorted(maps.Keys(r.modifiers))
}

func (r *Result) CommentIndices() []int {
	return slices.Sorted(maps.Keys(r.comments))
}

func (r *Result) align(i, j int) {
	r.aligned[i] = j
	r.alignedTo[j] = i
}

// replace records that i is replaced as a whole by j, superseding any
// alignment, deletion or attribute change of i.
func (r *Result) replace(i, j int) {
	if jj, ok := r.aligned[i]; ok {
		delete(r.aligned, i)
		delete(r.alignedTo, jj)
	}
	delete(r.deleted, i)
	delete(r.modifiers, i)
	delete(r.comments, i)
	r.replaced[i] = j
	r.replacedBy[j] = i
}

func (r *Result) unreplace(i, j int) {
	delete(r.replaced, i)
	delete(r.replacedBy, j)
}
