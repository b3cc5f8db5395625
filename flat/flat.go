// Package flat lays a syntax tree out in pre-order so that nodes can be
// addressed by integer index.
//
// Every list field of a node is materialized as a list wrapper entry which
// precedes the members of the list.  The wrapper gives the list itself an
// index and a depth, so an insertion can be anchored as "insert into list
// L at position k" rather than as an ambiguous pre-order position.  Empty
// lists get a wrapper too.
//
// Indices start at 1; index 0 is never a valid entry and is used as the
// parent of the root.
package flat

import (
	"slices"
	"strconv"
	"strings"

	"github.com/alvawei/smerge-sub000/ast"
)

// Entry is one position of a flattened tree: either a node, or the
// wrapper of the list field Owner.Fields[Field].
type Entry struct {
	Node  *ast.Node
	Owner *ast.Node
	Field int
}

func (e Entry) IsList() bool {
	return e.Node == nil
}

func (e Entry) Kind() ast.Kind {
	if e.Node == nil {
		return ast.ListKind
	}
	return e.Node.Kind
}

// FieldName is the name of the list field for a wrapper, empty otherwise.
func (e Entry) FieldName() string {
	if e.Node != nil {
		return ""
	}
	return e.Owner.Fields[e.Field].Name
}

type Tree struct {
	Root *ast.Node

	entries  []Entry
	depth    []int
	parent   []int
	pos      []int
	end      []int
	field    []string
	children [][]int
	index    map[*ast.Node]int
}

// New flattens the tree at root.  A nil root gives an empty tree.
func New(root *ast.Node) *Tree {
	t := &Tree{
		Root:     root,
		entries:  []Entry{{}},
		depth:    []int{-1},
		parent:   []int{0},
		pos:      []int{-1},
		end:      []int{0},
		field:    []string{""},
		children: [][]int{nil},
		index:    map[*ast.Node]int{},
	}
	if root != nil {
		t.addNode(root, 0, 0, -1, "")
	}
	return t
}

func (t *Tree) add(e Entry, parent, depth, pos int, field string) int {
	i := len(t.entries)
	t.entries = append(t.entries, e)
	t.depth = append(t.depth, depth)
	t.parent = append(t.parent, parent)
	t.pos = append(t.pos, pos)
	t.end = append(t.end, 0)
	t.field = append(t.field, field)
	t.children = append(t.children, nil)
	if parent != 0 {
		t.children[parent] = append(t.children[parent], i)
	}
	return i
}

func (t *Tree) addNode(n *ast.Node, parent, depth, pos int, field string) {
	i := t.add(Entry{Node: n}, parent, depth, pos, field)
	t.index[n] = i
	for fi := range n.Fields {
		f := &n.Fields[fi]
		if !f.List {
			if f.Node != nil {
				t.addNode(f.Node, i, depth+1, -1, f.Name)
			}
			continue
		}
		w := t.add(Entry{Owner: n, Field: fi}, i, depth+1, -1, f.Name)
		for k, item := range f.Items {
			t.addNode(item, w, depth+2, k, "")
		}
		t.end[w] = len(t.entries)
	}
	t.end[i] = len(t.entries)
}

// Len returns the number of entries, wrappers included.
func (t *Tree) Len() int {
	return len(t.entries) - 1
}

func (t *Tree) Entry(i int) Entry {
	return t.entries[i]
}

func (t *Tree) Depth(i int) int {
	return t.depth[i]
}

// Parent returns the structural parent of i: the wrapper for a list
// member, the owning node otherwise, and 0 for the root.
func (t *Tree) Parent(i int) int {
	return t.parent[i]
}

// Pos returns the position of a list member inside its list, or -1.
func (t *Tree) Pos(i int) int {
	return t.pos[i]
}

// FieldOf returns the name of the field holding i: the slot name of a slot
// child, the field name of a list wrapper, and empty for list members and
// the root.
func (t *Tree) FieldOf(i int) string {
	return t.field[i]
}

// Children returns the entries directly below i in pre-order.
func (t *Tree) Children(i int) []int {
	return t.children[i]
}

// End returns one past the last entry of the subtree at i; the subtree
// occupies indices [i, End(i)).
func (t *Tree) End(i int) int {
	return t.end[i]
}

// IndexOf returns the index of n, or 0 when n is not part of the tree.
func (t *Tree) IndexOf(n *ast.Node) int {
	return t.index[n]
}

// Path renders the location of i, such as Unit/types[0]/members.
func (t *Tree) Path(i int) string {
	if i <= 0 || i > t.Len() {
		return "<none>"
	}
	var segs []string
	for j := i; j != 0; j = t.parent[j] {
		switch {
		case t.parent[j] == 0:
			segs = append(segs, t.entries[j].Kind().String())
		case t.pos[j] >= 0:
			p := t.parent[j]
			segs = append(segs, t.field[p]+"["+strconv.Itoa(t.pos[j])+"]")
			j = p
		default:
			segs = append(segs, t.field[j])
		}
	}
	slices.Reverse(segs)
	return strings.Join(segs, "/")
}
