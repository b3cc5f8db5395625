package flat

import (
	"testing"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/google/go-cmp/cmp"
)

func sample() *ast.Node {
	return ast.New(ast.UnitKind).
		WithSlot("package", ast.New(ast.PackageKind).WithSlot("name", ast.QualifiedName("p"))).
		WithList("imports", ast.New(ast.ImportKind).WithSlot("name", ast.QualifiedName("q.R"))).
		WithList("types",
			ast.New(ast.ClassKind).
				WithSlot("name", ast.Name("A")).
				WithSlot("extends", nil).
				WithList("members"))
}

func TestPreOrder(t *testing.T) {
	tr := New(sample())
	if tr.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", tr.Len())
	}
	var kinds []string
	var depths, parents, pos []int
	for i := 1; i <= tr.Len(); i++ {
		kinds = append(kinds, tr.Entry(i).Kind().String())
		depths = append(depths, tr.Depth(i))
		parents = append(parents, tr.Parent(i))
		pos = append(pos, tr.Pos(i))
	}
	want := []string{"Unit", "Package", "QualifiedName", "List", "Import", "QualifiedName", "List", "Class", "Name", "List"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 1, 2, 3, 1, 2, 3, 3}, depths); diff != "" {
		t.Errorf("depths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 1, 4, 5, 1, 7, 8, 8}, parents); diff != "" {
		t.Errorf("parents (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{-1, -1, -1, -1, 0, -1, -1, 0, -1, -1}, pos); diff != "" {
		t.Errorf("pos (-want +got):\n%s", diff)
	}
}

func TestWrappers(t *testing.T) {
	root := sample()
	tr := New(root)
	w := tr.Entry(10)
	if !w.IsList() || w.FieldName() != "members" {
		t.Fatalf("entry 10 should be the empty members wrapper, got %+v", w)
	}
	if len(tr.Children(10)) != 0 {
		t.Errorf("empty list has children %v", tr.Children(10))
	}
	if diff := cmp.Diff([]int{2, 4, 7}, tr.Children(1)); diff != "" {
		t.Errorf("root children (-want +got):\n%s", diff)
	}
	if tr.End(1) != 11 || tr.End(4) != 7 || tr.End(10) != 11 || tr.End(9) != 10 {
		t.Errorf("ends: %d %d %d %d", tr.End(1), tr.End(4), tr.End(10), tr.End(9))
	}
	cls := ast.Items(root, "types")[0]
	if tr.IndexOf(cls) != 8 || tr.IndexOf(ast.Name("A")) != 0 {
		t.Errorf("IndexOf")
	}
}

func TestPath(t *testing.T) {
	tr := New(sample())
	tests := map[int]string{
		1:  "Unit",
		3:  "Unit/package/name",
		4:  "Unit/imports",
		5:  "Unit/imports[0]",
		9:  "Unit/types[0]/name",
		10: "Unit/types[0]/members",
		0:  "<none>",
	}
	for i, want := range tests {
		if got := tr.Path(i); got != want {
			t.Errorf("Path(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestFieldOf(t *testing.T) {
	tr := New(sample())
	var got []string
	for i := 1; i <= tr.Len(); i++ {
		got = append(got, tr.FieldOf(i))
	}
	want := []string{"", "package", "name", "imports", "", "name", "types", "", "name", "members"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEmpty(t *testing.T) {
	tr := New(nil)
	if tr.Len() != 0 {
		t.Errorf("Len() = %d", tr.Len())
	}
}
