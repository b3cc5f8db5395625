package libdiff

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alvawei/smerge-sub000/ast"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineType indicates what a rendered line describes
type LineType int

const (
	DeleteLine LineType = iota
	ReplaceLine
	InsertLine
	ModifiersLine
	CommentLine
	SummaryLine
)

// Line is one rendered edit of a script
type Line struct {
	Type    LineType
	Path    string
	Content string
}

func (l Line) String() string {
	if l.Path == "" {
		return l.Content
	}
	return l.Path + ": " + l.Content
}

// Describe renders the script of r, ordered by base position.  Replaced
// literals show a character level diff, [-removed-]{+added+}.
func Describe(r *Result) []Line {
	var lines []Line
	for _, i := range r.DeletedIndices() {
		lines = append(lines, Line{
			Type:    DeleteLine,
			Path:    r.From.Path(i),
			Content: "delete " + label(r.From.Entry(i).Node),
		})
	}
	for _, i := range r.ReplacedIndices() {
		from, to := r.From.Entry(i).Node, r.ReplacementNode(i)
		content := "replace " + label(from) + " -> " + label(to)
		if from.Kind == to.Kind && from.Kind.HasValue() {
			content = "replace " + from.Kind.String() + " " + valueDiff(from.Value, to.Value)
		}
		lines = append(lines, Line{Type: ReplaceLine, Path: r.From.Path(i), Content: content})
	}
	nIns := 0
	for _, w := range r.InsertWrappers() {
		runs := r.Inserts(w)
		for _, at := range slices.Sorted(maps.Keys(runs)) {
			for _, n := range r.InsertNodes(runs[at]) {
				nIns++
				lines = append(lines, Line{
					Type:    InsertLine,
					Path:    r.From.Path(w),
					Content: fmt.Sprintf("insert %s at %d", label(n), at),
				})
			}
		}
	}
	for _, i := range r.ModifierIndices() {
		m, _ := r.Modifiers(i)
		lines = append(lines, Line{
			Type:    ModifiersLine,
			Path:    r.From.Path(i),
			Content: fmt.Sprintf("modifiers %s -> %s", r.From.Entry(i).Node.Modifiers, m),
		})
	}
	for _, i := range r.CommentIndices() {
		c, _ := r.Comment(i)
		lines = append(lines, Line{
			Type:    CommentLine,
			Path:    r.From.Path(i),
			Content: fmt.Sprintf("comment %q -> %q", r.From.Entry(i).Node.Comment, c),
		})
	}
	if len(lines) == 0 {
		return nil
	}
	lines = append(lines, Line{
		Type: SummaryLine,
		Content: fmt.Sprintf("%d deleted, %d replaced, %d inserted, %d attribute changes (cost %d)",
			len(r.deleted), len(r.replaced), nIns, len(r.modifiers)+len(r.comments), r.Cost),
	})
	return lines
}

func label(n *ast.Node) string {
	if n.Kind.HasValue() {
		return n.Kind.String() + " " + n.Value
	}
	return n.Kind.String()
}

func valueDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	var buf strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + diff.Text + "+}")
		}
	}
	return buf.String()
}
