package rectsum

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// dense is a naive reference grid.
type dense[V Scalar] struct {
	n, m  int
	cells []V
}

func newDense[V Scalar](n, m int) *dense[V] {
	return &dense[V]{n: n, m: m, cells: make([]V, n*m)}
}

func (d *dense[V]) update(r Rect, v V) {
	for x := r.X0; x <= r.X1; x++ {
		for y := r.Y0; y <= r.Y1; y++ {
			d.cells[x*d.m+y] += v
		}
	}
}

func (d *dense[V]) query(r Rect) V {
	var sum V
	for x := r.X0; x <= r.X1; x++ {
		for y := r.Y0; y <= r.Y1; y++ {
			sum += d.cells[x*d.m+y]
		}
	}
	return sum
}

type op[V Scalar] struct {
	r Rect
	v V
}

func randomRect(rnd *rand.Rand, n, m int) Rect {
	x0, y0 := rnd.Intn(n), rnd.Intn(m)
	return R(x0, x0+rnd.Intn(n-x0), y0, y0+rnd.Intn(m-y0))
}

func randomOps(rnd *rand.Rand, n, m, count int) []op[int64] {
	ops := make([]op[int64], count)
	for i := range ops {
		ops[i] = op[int64]{r: randomRect(rnd, n, m), v: int64(rnd.Intn(201) - 100)}
	}
	return ops
}

func TestAgainstDenseGrid(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(4711))
	dims := [][2]int{{1, 1}, {1, 9}, {9, 1}, {2, 3}, {5, 5}, {6, 11}, {13, 7}, {16, 16}}
	for _, d := range dims {
		n, m := d[0], d[1]
		tree, err := New[int64](Config{Rows: n, Cols: m})
		if err != nil {
			t.Fatal(err.Error())
		}
		grid := newDense[int64](n, m)
		for _, o := range randomOps(rnd, n, m, 60) {
			mustUpdate(t, tree, o.r, o.v)
			grid.update(o.r, o.v)
			for k := 0; k < 10; k++ {
				q := randomRect(rnd, n, m)
				expectSum(t, tree, q, grid.query(q))
			}
		}
		if err := tree.Check(); err != nil {
			t.Errorf("%d×%d: %v", n, m, err)
		}
		if tree.Total() != grid.query(tree.Bounds()) {
			t.Errorf("%d×%d: total %d differs from dense grid %d", n, m,
				tree.Total(), grid.query(tree.Bounds()))
		}
	}
}

func TestExhaustiveSmallGrid(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(99))
	tree, _ := New[int](Config{Rows: 5, Cols: 6})
	grid := newDense[int](5, 6)
	for i := 0; i < 25; i++ {
		r, v := randomRect(rnd, 5, 6), rnd.Intn(19)-9
		mustUpdate(t, tree, r, v)
		grid.update(r, v)
	}
	for _, q := range allRects(5, 6) {
		expectSum(t, tree, q, grid.query(q))
	}
}

func TestLinearity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(17))
	n, m := 10, 12
	tree, _ := New[int64](Config{Rows: n, Cols: m})
	ops := randomOps(rnd, n, m, 40)
	for _, o := range ops {
		mustUpdate(t, tree, o.r, o.v)
	}
	for k := 0; k < 200; k++ {
		q := randomRect(rnd, n, m)
		var expected int64
		for _, o := range ops {
			if isect, ok := o.r.Intersect(q); ok {
				expected += o.v * int64(isect.Area())
			}
		}
		expectSum(t, tree, q, expected)
	}
	var total int64
	for _, o := range ops {
		total += o.v * int64(o.r.Area())
	}
	expectSum(t, tree, tree.Bounds(), total)
}

func TestSingleCellConsistency(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(3))
	n, m := 7, 9
	tree, _ := New[int64](Config{Rows: n, Cols: m})
	ops := randomOps(rnd, n, m, 30)
	for _, o := range ops {
		mustUpdate(t, tree, o.r, o.v)
	}
	for x := 0; x < n; x++ {
		for y := 0; y < m; y++ {
			var expected int64
			for _, o := range ops {
				if o.r.Contains(x, y) {
					expected += o.v
				}
			}
			if c, _ := tree.Cell(x, y); c != expected {
				t.Errorf("cell (%d,%d) = %d, expected %d", x, y, c, expected)
			}
		}
	}
}

func TestUpdatesCommute(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(2021))
	n, m := 6, 5
	ops := randomOps(rnd, n, m, 30)
	forward, _ := New[int64](Config{Rows: n, Cols: m})
	shuffled, _ := New[int64](Config{Rows: n, Cols: m})
	for _, o := range ops {
		mustUpdate(t, forward, o.r, o.v)
	}
	rnd.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })
	for _, o := range ops {
		mustUpdate(t, shuffled, o.r, o.v)
	}
	for _, q := range allRects(n, m) {
		a, _ := forward.QueryRect(q)
		b, _ := shuffled.QueryRect(q)
		if a != b {
			t.Errorf("query %s depends on update order: %d vs %d", q, a, b)
		}
	}
}

func TestZeroUpdateIsNoOp(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(5))
	n, m := 8, 8
	tree, _ := New[int64](Config{Rows: n, Cols: m})
	for _, o := range randomOps(rnd, n, m, 20) {
		mustUpdate(t, tree, o.r, o.v)
	}
	before := make(map[Rect]int64)
	queries := make([]Rect, 50)
	for i := range queries {
		queries[i] = randomRect(rnd, n, m)
		before[queries[i]], _ = tree.QueryRect(queries[i])
	}
	for i := 0; i < 20; i++ {
		mustUpdate(t, tree, randomRect(rnd, n, m), 0)
	}
	for _, q := range queries {
		expectSum(t, tree, q, before[q])
	}
}

func TestFloatGrid(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(77))
	n, m := 9, 6
	tree, _ := New[float64](Config{Rows: n, Cols: m})
	grid := newDense[float64](n, m)
	for i := 0; i < 40; i++ {
		// quarters keep all sums exactly representable
		r, v := randomRect(rnd, n, m), float64(rnd.Intn(41)-20)/4
		mustUpdate(t, tree, r, v)
		grid.update(r, v)
	}
	for k := 0; k < 200; k++ {
		q := randomRect(rnd, n, m)
		expectSum(t, tree, q, grid.query(q))
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}
