package libdiff

import (
	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/debug"
)

// build turns the leaf level ops into the script: alignments with
// attribute deltas, replacements, deletions and list inserts.  Edits which
// have no addressable anchor are absorbed into a replacement of the
// nearest aligned ancestor.
func (r *Result) build(ops []op) {
	var (
		replaces [][2]int
		crossed  [][2]int
		reshaped [][2]int
		deletes  []int
		inserts  []int
	)
	for k := len(ops) - 1; k >= 0; k-- {
		o := ops[k]
		switch o.typ {
		case opAlign:
			if !r.placed(o.i, o.j) {
				crossed = append(crossed, [2]int{o.i, o.j})
				continue
			}
			x, y := r.From.Entry(o.i), r.To.Entry(o.j)
			if updateCost(x, y) != 0 {
				r.replaced[o.i] = o.j
				r.replacedBy[o.j] = o.i
				replaces = append(replaces, [2]int{o.i, o.j})
				continue
			}
			r.align(o.i, o.j)
			if x.IsList() {
				continue
			}
			if !sameLayout(x.Node, y.Node) {
				reshaped = append(reshaped, [2]int{o.i, o.j})
				continue
			}
			if !x.Node.Modifiers.Equal(y.Node.Modifiers) {
				r.modifiers[o.i] = y.Node.Modifiers
			}
			if x.Node.Comment != y.Node.Comment {
				r.comments[o.i] = y.Node.Comment
			}
		case opDelete:
			r.deleted[o.i] = true
			deletes = append(deletes, o.i)
		case opInsert:
			r.inserted[o.j] = true
			inserts = append(inserts, o.j)
		}
	}
	for _, p := range reshaped {
		r.replace(p[0], p[1])
	}
	r.anchorCrossings(crossed)
	r.anchorReplacements(replaces)
	r.anchorDeletes(deletes)
	r.indexInserts(r.resolveInserts(inserts))
	r.prune()
	if debug.Diff() {
		debug.Logf("diff: %d deleted, %d replaced, %d lists with inserts, %d modifier and %d comment changes\n",
			len(r.deleted), len(r.replaced), len(r.inserts), len(r.modifiers), len(r.comments))
	}
}

// placed reports whether the pairing of i with j keeps both in the same
// place: the same field of parents which are themselves paired, or of a
// deleted parent and an inserted one.
func (r *Result) placed(i, j int) bool {
	if r.From.FieldOf(i) != r.To.FieldOf(j) {
		return false
	}
	pa, pb := r.From.Parent(i), r.To.Parent(j)
	if pa == 0 || pb == 0 {
		return pa == pb
	}
	if b, ok := r.aligned[pa]; ok && b == pb {
		return true
	}
	if b, ok := r.replaced[pa]; ok && b == pb {
		return true
	}
	return r.deleted[pa] && r.inserted[pb]
}

// sameLayout reports whether a and b have the same field names in the same
// order, each a slot or a list in both.
func sameLayout(a, b *ast.Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for k := range a.Fields {
		if a.Fields[k].Name != b.Fields[k].Name || a.Fields[k].List != b.Fields[k].List {
			return false
		}
	}
	return true
}

// anchorCrossings handles pairs which the dynamic program matched across
// fields or under unpaired parents.  Neither side can stay in place, so the
// nearest aligned ancestors on both sides are replaced.
func (r *Result) anchorCrossings(crossed [][2]int) {
	for _, p := range crossed {
		r.promoteFrom(r.From.Parent(p[0]))
		r.promoteTo(r.To.Parent(p[1]), 0)
	}
}

// anchorReplacements keeps a replacement only when both sides are real
// nodes whose parents are aligned.  Otherwise the replacement moves up.
func (r *Result) anchorReplacements(replaces [][2]int) {
	for _, p := range replaces {
		i, j := p[0], p[1]
		if !r.From.Entry(i).IsList() && !r.To.Entry(j).IsList() && r.parentsAligned(i, j) {
			continue
		}
		r.unreplace(i, j)
		r.promoteTo(r.To.Parent(j), i)
	}
}

// anchorDeletes handles deletes which cannot leave the owner in place: a
// list field cannot vanish while its owner stays, and a deleted slot child
// must leave the slot empty in the edited owner.  The owner is replaced
// instead.
func (r *Result) anchorDeletes(deletes []int) {
	for _, i := range deletes {
		if !r.deleted[i] {
			continue
		}
		p := r.From.Parent(i)
		if r.From.Entry(i).IsList() {
			delete(r.deleted, i)
			r.promoteFrom(p)
			continue
		}
		if p == 0 || r.From.Entry(p).IsList() {
			continue
		}
		q, ok := r.aligned[p]
		if !ok || ast.Get(r.To.Entry(q).Node, r.From.FieldOf(i)) == nil {
			continue
		}
		delete(r.deleted, i)
		r.promoteFrom(p)
	}
}

// resolveInserts classifies inserts in pre-order.  Inserts below a wrapper
// aligned to a wrapper are list inserts and are returned; any other insert
// replaces the counterpart of its aligned parent.
func (r *Result) resolveInserts(inserts []int) []int {
	var list []int
	for _, j := range inserts {
		p := r.To.Parent(j)
		if p == 0 {
			r.replace(1, 1)
			continue
		}
		if r.coveredTo(p) {
			continue
		}
		if r.To.Entry(p).IsList() {
			if a, ok := r.alignedTo[p]; ok && r.From.Entry(a).IsList() {
				list = append(list, j)
				continue
			}
		}
		r.promoteTo(p, 0)
	}
	return list
}

// indexInserts places each list insert relative to the nearest preceding
// sibling which has a counterpart in the base list.  It must run after all
// alignments and replacements are final.
func (r *Result) indexInserts(list []int) {
	for _, j := range list {
		p := r.To.Parent(j)
		aw, ok := r.alignedTo[p]
		if !ok || r.coveredTo(p) {
			continue
		}
		idx := 0
		sibs := r.To.Children(p)
		for k := r.To.Pos(j) - 1; k >= 0; k-- {
			s := sibs[k]
			a, ok := r.alignedTo[s]
			if !ok {
				a, ok = r.replacedBy[s]
			}
			if ok && r.From.Parent(a) == aw {
				idx = r.From.Pos(a) + 1
				break
			}
		}
		runs := r.inserts[aw]
		if runs == nil {
			runs = map[int][]int{}
			r.inserts[aw] = runs
		}
		runs[idx] = append(runs[idx], j)
	}
}

func (r *Result) parentsAligned(i, j int) bool {
	pa, pb := r.From.Parent(i), r.To.Parent(j)
	if pa == 0 || pb == 0 {
		return pa == pb
	}
	b, ok := r.aligned[pa]
	return ok && b == pb
}

// coveredTo reports whether q or one of its ancestors in To is already
// taken wholesale by an insert or a replacement.
func (r *Result) coveredTo(q int) bool {
	for ; q != 0; q = r.To.Parent(q) {
		if r.inserted[q] {
			return true
		}
		if _, ok := r.replacedBy[q]; ok {
			return true
		}
	}
	return false
}

// promoteTo replaces the counterpart of the nearest aligned node at or
// above q in To.  When within is not 0 the counterpart must contain it.
func (r *Result) promoteTo(q, within int) {
	for ; q != 0; q = r.To.Parent(q) {
		if r.inserted[q] {
			return
		}
		if _, ok := r.replacedBy[q]; ok {
			return
		}
		a, ok := r.alignedTo[q]
		if !ok || r.To.Entry(q).IsList() || r.From.Entry(a).IsList() {
			continue
		}
		if within != 0 && (within < a || within >= r.From.End(a)) {
			continue
		}
		r.replace(a, q)
		return
	}
	r.replace(1, 1)
}

// promoteFrom replaces the nearest aligned node at or above p in From by
// its counterpart.
func (r *Result) promoteFrom(p int) {
	for ; p != 0; p = r.From.Parent(p) {
		if r.deleted[p] {
			return
		}
		if _, ok := r.replaced[p]; ok {
			return
		}
		b, ok := r.aligned[p]
		if !ok || r.From.Entry(p).IsList() || r.To.Entry(b).IsList() {
			continue
		}
		r.replace(p, b)
		return
	}
	r.replace(1, 1)
}

// prune drops edits nested below a deleted or replaced node; the outer
// edit already accounts for them.
func (r *Result) prune() {
	for i := range r.deleted {
		if r.buried(i) {
			delete(r.deleted, i)
		}
	}
	for i, j := range r.replaced {
		if r.buried(i) {
			r.unreplace(i, j)
		}
	}
	for w := range r.inserts {
		if r.buried(w) || r.deleted[w] || r.isReplaced(w) {
			delete(r.inserts, w)
		}
	}
	for i := range r.modifiers {
		if r.buried(i) {
			delete(r.modifiers, i)
		}
	}
	for i := range r.comments {
		if r.buried(i) {
			delete(r.comments, i)
		}
	}
}

// buried reports whether a proper ancestor of i in From is deleted or
// replaced.
func (r *Result) buried(i int) bool {
	for p := r.From.Parent(i); p != 0; p = r.From.Parent(p) {
		if r.deleted[p] || r.isReplaced(p) {
			return true
		}
	}
	return false
}

func (r *Result) isReplaced(i int) bool {
	_, ok := r.replaced[i]
	return ok
}
