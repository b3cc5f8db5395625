package merge

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/debug"
	"github.com/alvawei/smerge-sub000/encode"
	"github.com/alvawei/smerge-sub000/flat"
	"github.com/alvawei/smerge-sub000/libdiff"
)

type Result struct {
	Outcome Outcome
	// Root is the merged tree.  It shares no nodes with the inputs.
	Root *ast.Node
	// SoftConflicts are the base indices whose comments were combined
	// from both sides.
	SoftConflicts []int
}

type MergeOption func(*merger)

// MergeLabels sets the names on the marker lines of combined comments.
func MergeLabels(local, remote string) MergeOption {
	return func(m *merger) {
		m.localLabel = local
		m.remoteLabel = remote
	}
}

type merger struct {
	base          *flat.Tree
	local, remote *libdiff.Result
	localLabel    string
	remoteLabel   string
	soft          []int
}

// Merge applies the edit scripts local and remote, both computed against
// base, to a copy of base.  When the scripts conflict it returns a
// *ConflictError and a Result with Outcome Conflicted and no tree.
func Merge(base *flat.Tree, local, remote *libdiff.Result, opts ...MergeOption) (*Result, error) {
	m := &merger{
		base:        base,
		local:       local,
		remote:      remote,
		localLabel:  "LOCAL",
		remoteLabel: "REMOTE",
	}
	for _, opt := range opts {
		opt(m)
	}
	res := &Result{Outcome: Unresolved}
	if base.Len() == 0 {
		res.Outcome = Merged
		return res, nil
	}
	root, err := m.node(1)
	if err != nil {
		res.Outcome = Conflicted
		if debug.Merge() {
			debug.Logf("merge: %v\n", err)
		}
		return res, err
	}
	res.Outcome = Merged
	res.Root = root
	res.SoftConflicts = m.soft
	if debug.Merge() {
		debug.Logf("merge: result\n%s\n", encode.MustString(root))
	}
	return res, nil
}

func (m *merger) conflict(i int, format string, args ...any) error {
	return &ConflictError{
		Index:  i,
		Kind:   m.base.Entry(i).Kind(),
		Path:   m.base.Path(i),
		Reason: fmt.Sprintf(format, args...),
	}
}

// node merges the subtree at base index i.  A nil node means i was
// deleted.
func (m *merger) node(i int) (*ast.Node, error) {
	if n, done, err := m.structural(i, m.local, m.remote, m.localLabel, m.remoteLabel); done {
		return n, err
	}
	if n, done, err := m.structural(i, m.remote, m.local, m.remoteLabel, m.localLabel); done {
		return n, err
	}
	src := m.base.Entry(i).Node
	n := &ast.Node{
		Kind:      src.Kind,
		Value:     src.Value,
		Modifiers: slices.Clone(src.Modifiers),
		Comment:   src.Comment,
		Fields:    make([]ast.Field, 0, len(src.Fields)),
	}
	m.comment(i, n)
	if err := m.modifiers(i, n); err != nil {
		return nil, err
	}
	kids := m.base.Children(i)
	k := 0
	for fi := range src.Fields {
		fld := &src.Fields[fi]
		if !fld.List && fld.Node == nil {
			n.Fields = append(n.Fields, ast.Field{Name: fld.Name})
			continue
		}
		c := kids[k]
		k++
		if !fld.List {
			child, err := m.node(c)
			if err != nil {
				return nil, err
			}
			n.Fields = append(n.Fields, ast.Field{Name: fld.Name, Node: child})
			continue
		}
		items, err := m.list(c)
		if err != nil {
			return nil, err
		}
		n.Fields = append(n.Fields, ast.Field{Name: fld.Name, List: true, Items: items})
	}
	return n, nil
}

// structural applies a deletion or replacement of i by d, provided the
// other script leaves the subtree at i alone.  done is false when d keeps
// i.
func (m *merger) structural(i int, d, other *libdiff.Result, label, otherLabel string) (*ast.Node, bool, error) {
	j, replaced := d.Replacement(i)
	if !replaced && !d.Deleted(i) {
		return nil, false, nil
	}
	verb := "deletes"
	if replaced {
		verb = "replaces"
	}
	if hit, ok := Sweep(m.base, other, i); ok {
		return nil, true, m.conflict(i, "%s %s %s which %s edits at %s",
			label, verb, m.base.Entry(i).Kind(), otherLabel, m.base.Path(hit))
	}
	if debug.Merge() {
		debug.Logf("merge: %s %s %s\n", label, verb, m.base.Path(i))
	}
	if !replaced {
		return nil, true, nil
	}
	return d.To.Entry(j).Node.Clone(), true, nil
}

func (m *merger) comment(i int, n *ast.Node) {
	lc, lok := m.local.Comment(i)
	rc, rok := m.remote.Comment(i)
	switch {
	case lok && rok && lc != rc:
		n.Comment = m.combine(lc, rc)
		m.soft = append(m.soft, i)
		if debug.Merge() {
			debug.Logf("merge: combined comments at %s\n", m.base.Path(i))
		}
	case lok:
		n.Comment = lc
	case rok:
		n.Comment = rc
	}
}

func (m *merger) combine(local, remote string) string {
	var buf strings.Builder
	buf.WriteString("<<<<<<< " + m.localLabel + "\n")
	if local != "" {
		buf.WriteString(local + "\n")
	}
	buf.WriteString("=======\n")
	if remote != "" {
		buf.WriteString(remote + "\n")
	}
	buf.WriteString(">>>>>>> " + m.remoteLabel)
	return buf.String()
}

func (m *merger) modifiers(i int, n *ast.Node) error {
	lm, lok := m.local.Modifiers(i)
	rm, rok := m.remote.Modifiers(i)
	switch {
	case lok && rok && !lm.Equal(rm):
		return m.conflict(i, "%s sets modifiers %s, %s sets %s", m.localLabel, lm, m.remoteLabel, rm)
	case lok:
		n.Modifiers = slices.Clone(lm)
	case rok:
		n.Modifiers = slices.Clone(rm)
	}
	return nil
}

// list merges the members of the list with wrapper w and splices in the
// inserts of both sides.
func (m *merger) list(w int) ([]*ast.Node, error) {
	lIns, rIns := m.local.Inserts(w), m.remote.Inserts(w)
	for at := range lIns {
		if _, ok := rIns[at]; ok {
			return nil, m.conflict(w, "%s and %s both insert at position %d", m.localLabel, m.remoteLabel, at)
		}
	}
	members := m.base.Children(w)
	items := []*ast.Node{}
	for k := 0; k <= len(members); k++ {
		items = splice(items, m.local, lIns[k])
		items = splice(items, m.remote, rIns[k])
		if k == len(members) {
			break
		}
		n, err := m.node(members[k])
		if err != nil {
			return nil, err
		}
		if n != nil {
			items = append(items, n)
		}
	}
	return items, nil
}

func splice(items []*ast.Node, d *libdiff.Result, run []int) []*ast.Node {
	for _, n := range d.InsertNodes(run) {
		items = append(items, n.Clone())
	}
	return items
}
