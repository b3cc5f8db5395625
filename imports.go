package smerge

import (
	"slices"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/debug"

	"github.com/samber/lo"
)

// ImportsField is the root list field merged as a set.
const ImportsField = "imports"

type imports struct {
	// at is the field position of the imports in the base root, or in a
	// side's root when base has none.
	at                  int
	base, local, remote []*ast.Node
}

// stripImports returns a shallow copy of root without its imports field,
// the position of that field and its members.
func stripImports(root *ast.Node) (*ast.Node, int, []*ast.Node) {
	if root == nil {
		return nil, -1, nil
	}
	at := root.FieldIndex(ImportsField)
	if at == -1 || !root.Fields[at].List {
		return root, -1, nil
	}
	res := *root
	res.Fields = slices.Delete(slices.Clone(root.Fields), at, at+1)
	return &res, at, root.Fields[at].Items
}

func importKey(n *ast.Node) string {
	return n.Kind.String() + " " + n.Modifiers.String() + " " + ast.Text(n)
}

// Union returns the base imports kept by both sides in base order, then
// the imports added by local, then those added by remote.  Imports are
// identified by kind, modifiers and text.
func Union(base, local, remote []*ast.Node) []*ast.Node {
	inBase := lo.KeyBy(base, importKey)
	inLocal := lo.KeyBy(local, importKey)
	inRemote := lo.KeyBy(remote, importKey)
	kept := lo.Filter(base, func(n *ast.Node, _ int) bool {
		k := importKey(n)
		return inLocal[k] != nil && inRemote[k] != nil
	})
	added := func(n *ast.Node, _ int) bool {
		return inBase[importKey(n)] == nil
	}
	all := lo.Flatten([][]*ast.Node{kept, lo.Filter(local, added), lo.Filter(remote, added)})
	return lo.Map(lo.UniqBy(all, importKey), func(n *ast.Node, _ int) *ast.Node {
		return n.Clone()
	})
}

func (imps *imports) restore(root *ast.Node) {
	items := Union(imps.base, imps.local, imps.remote)
	if imps.at == -1 && len(items) == 0 {
		return
	}
	if debug.Imports() {
		debug.Logf("imports: %d base, %d local, %d remote -> %d\n",
			len(imps.base), len(imps.local), len(imps.remote), len(items))
	}
	at := min(imps.at, len(root.Fields))
	fld := ast.Field{Name: ImportsField, List: true, Items: items}
	root.Fields = slices.Insert(root.Fields, at, fld)
}
