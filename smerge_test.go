package smerge

import (
	"context"
	"errors"
	"testing"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/merge"
	"github.com/google/go-cmp/cmp"
)

func imp(name string) *ast.Node {
	return ast.New(ast.ImportKind).WithSlot("name", ast.QualifiedName(name))
}

func unit(imps []string, members ...*ast.Node) *ast.Node {
	items := make([]*ast.Node, len(imps))
	for i, name := range imps {
		items[i] = imp(name)
	}
	return ast.New(ast.UnitKind).
		WithSlot("package", ast.New(ast.PackageKind).WithSlot("name", ast.QualifiedName("a.b"))).
		WithList(ImportsField, items...).
		WithList("types",
			ast.New(ast.ClassKind).
				WithSlot("name", ast.Name("A")).
				WithList("members", members...))
}

func method(name string) *ast.Node {
	return ast.New(ast.MethodKind).WithSlot("name", ast.Name(name))
}

func importNames(root *ast.Node) []string {
	var res []string
	for _, n := range ast.Items(root, ImportsField) {
		res = append(res, ast.Text(n))
	}
	return res
}

func memberNames(root *ast.Node) []string {
	var res []string
	class := ast.Items(root, "types")[0]
	for _, n := range ast.Items(class, "members") {
		res = append(res, ast.Text(ast.Get(n, "name")))
	}
	return res
}

func TestMergeImports(t *testing.T) {
	base := unit([]string{"java.util.List", "java.util.Map"}, method("a"))
	local := unit([]string{"java.util.List", "java.util.Set"}, method("a"), method("b"))
	remote := unit([]string{"java.io.File", "java.util.List", "java.util.Map", "java.util.Set"}, method("z"), method("a"))
	for _, parallel := range []bool{true, false} {
		res, err := Merge(context.Background(), base, local, remote, WithParallel(parallel))
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"java.util.List", "java.util.Set", "java.io.File"}
		if diff := cmp.Diff(want, importNames(res.Root)); diff != "" {
			t.Errorf("imports (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"z", "a", "b"}, memberNames(res.Root)); diff != "" {
			t.Errorf("members (-want +got):\n%s", diff)
		}
		if got := res.Root.Fields[1].Name; got != ImportsField {
			t.Errorf("imports moved to field %q", got)
		}
	}
}

func TestImportsWithoutUnion(t *testing.T) {
	base := unit([]string{"x.A"})
	local := unit([]string{"x.A", "x.B"})
	remote := unit([]string{"x.A", "x.C"})
	if _, err := Merge(context.Background(), base, local, remote, WithImportUnion(false)); !errors.Is(err, merge.ErrConflict) {
		t.Errorf("expected a conflict on the import list, got %v", err)
	}
	res, err := Merge(context.Background(), base, local, remote)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x.A", "x.B", "x.C"}, importNames(res.Root)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestImportsAddedBySide(t *testing.T) {
	base := ast.New(ast.UnitKind).WithList("types")
	local := ast.New(ast.UnitKind).WithList(ImportsField, imp("x.A")).WithList("types")
	res, err := Merge(context.Background(), base, local, base.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(local, res.Root) {
		t.Errorf("merged root differs from local")
	}
}

func TestUnion(t *testing.T) {
	static := imp("x.A").WithModifiers("static")
	tests := []struct {
		name                string
		base, local, remote []*ast.Node
		want                []string
	}{
		{"empty", nil, nil, nil, []string{}},
		{"both delete", []*ast.Node{imp("x.A")}, nil, nil, []string{}},
		{"one deletes", []*ast.Node{imp("x.A"), imp("x.B")}, []*ast.Node{imp("x.B")}, []*ast.Node{imp("x.A"), imp("x.B")}, []string{"x.B"}},
		{"same addition", nil, []*ast.Node{imp("x.A")}, []*ast.Node{imp("x.A")}, []string{"x.A"}},
		{"modifiers differ", nil, []*ast.Node{imp("x.A")}, []*ast.Node{static}, []string{"x.A", "x.A"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := []string{}
			for _, n := range Union(test.base, test.local, test.remote) {
				got = append(got, ast.Text(n))
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputsUnchanged(t *testing.T) {
	base := unit([]string{"x.A"}, method("a"))
	local := unit([]string{"x.B"}, method("a"), method("b"))
	remote := unit([]string{"x.A"}, method("c"))
	keep := []*ast.Node{base.Clone(), local.Clone(), remote.Clone()}
	if _, err := Merge(context.Background(), base, local, remote); err != nil {
		t.Fatal(err)
	}
	for i, n := range []*ast.Node{base, local, remote} {
		if !ast.Equal(keep[i], n) {
			t.Errorf("input %d modified", i)
		}
	}
}

func TestNoBase(t *testing.T) {
	if _, err := Merge(context.Background(), nil, ast.New(ast.UnitKind), nil); !errors.Is(err, ErrNoBase) {
		t.Errorf("got %v", err)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	base := unit(nil, method("a"))
	if _, err := Merge(ctx, base, base, base); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}

func TestDiff(t *testing.T) {
	a := unit(nil, method("a"))
	if !Diff(a, a.Clone()).Empty() {
		t.Errorf("diff of equal trees is not empty")
	}
	if Diff(a, unit(nil, method("b"))).Empty() {
		t.Errorf("diff of different trees is empty")
	}
}
