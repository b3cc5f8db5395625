package libdiff

import (
	"math"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/debug"
	"github.com/alvawei/smerge-sub000/flat"
)

const (
	editCost = 1
	infinity = math.MaxInt / 2
)

type opType int

const (
	opAlign opType = iota
	opDelete
	opInsert
)

func (t opType) String() string {
	switch t {
	case opAlign:
		return "align"
	case opDelete:
		return "delete"
	default:
		return "insert"
	}
}

// op is one leaf level edit: align or replace a[i] with b[j], delete a[i]
// or insert b[j].
type op struct {
	typ  opType
	i, j int
}

type differ struct {
	a, b *flat.Tree
	m, n int
	opt  [][]int
}

// Diff computes the minimum cost edit script turning a into b.
func Diff(a, b *flat.Tree) *Result {
	df := &differ{a: a, b: b, m: a.Len(), n: b.Len()}
	df.fill()
	ops := df.recover()
	res := newResult(a, b)
	res.Cost = df.opt[df.m][df.n]
	if debug.Diff() {
		debug.Logf("diff: %d x %d nodes, cost %d\n", df.m, df.n, res.Cost)
	}
	if debug.Script() {
		for _, o := range ops {
			debug.Logf("  %s a=%d b=%d\n", o.typ, o.i, o.j)
		}
	}
	if df.m == 0 || df.n == 0 {
		if df.m != 0 {
			res.deleted[1] = true
		}
		return res
	}
	res.build(ops)
	return res
}

// updateCost is 0 for shallowly equal entries and 1 otherwise.  Any two
// list wrappers are equal.
func updateCost(x, y flat.Entry) int {
	if x.IsList() || y.IsList() {
		if x.IsList() && y.IsList() {
			return 0
		}
		return editCost
	}
	if ast.ShallowEqual(x.Node, y.Node) {
		return 0
	}
	return editCost
}

func (df *differ) canAlign(i, j int) bool {
	return df.a.Depth(i) == df.b.Depth(j)
}

// canDelete reports whether a[i] may be deleted at j without leaving a
// deeper b[j+1] stranded below it.
func (df *differ) canDelete(i, j int) bool {
	return j == df.n || df.b.Depth(j+1) <= df.a.Depth(i)
}

func (df *differ) canInsert(i, j int) bool {
	return i == df.m || df.a.Depth(i+1) <= df.b.Depth(j)
}

func (df *differ) fill() {
	m, n := df.m, df.n
	df.opt = make([][]int, m+1)
	for i := range df.opt {
		df.opt[i] = make([]int, n+1)
		df.opt[i][0] = i * editCost
	}
	for j := 0; j <= n; j++ {
		df.opt[0][j] = j * editCost
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			best := infinity
			if df.canAlign(i, j) {
				best = df.opt[i-1][j-1] + updateCost(df.a.Entry(i), df.b.Entry(j))
			}
			if df.canDelete(i, j) {
				best = min(best, df.opt[i-1][j]+editCost)
			}
			if df.canInsert(i, j) {
				best = min(best, df.opt[i][j-1]+editCost)
			}
			df.opt[i][j] = best
		}
	}
}

// recover walks the table back from (m, n).  When several transitions
// reach the optimum, delete wins over insert which wins over align.  The
// ops come out in reverse pre-order.
func (df *differ) recover() []op {
	var ops []op
	i, j := df.m, df.n
	for i > 0 && j > 0 {
		cur := df.opt[i][j]
		switch {
		case cur == df.opt[i-1][j]+editCost && df.canDelete(i, j):
			ops = append(ops, op{typ: opDelete, i: i})
			i--
		case cur == df.opt[i][j-1]+editCost && df.canInsert(i, j):
			ops = append(ops, op{typ: opInsert, j: j})
			j--
		default:
			ops = append(ops, op{typ: opAlign, i: i, j: j})
			i--
			j--
		}
	}
	for ; i > 0; i-- {
		ops = append(ops, op{typ: opDelete, i: i})
	}
	for ; j > 0; j-- {
		ops = append(ops, op{typ: opInsert, j: j})
	}
	return ops
}
