package rectsum

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a two-dimensional segment tree over a grid of Rows × Cols cells.
//
// The zero value is not usable; create trees with New.
//
//	Operation     |   Tree                |  Dense grid
//	--------------+-----------------------+------------
//	Update        |   O(log n · log m)    |   O(area)
//	Query         |   O(log n · log m)    |   O(area)
//	Space         |   O(16 · n · m)       |   O(n · m)
type Tree[V Scalar] struct {
	n, m   int       // rows, columns
	stride int       // number of inner nodes per outer node
	nodes  []Node[V] // flat table of 4n × 4m records
}

// New creates a tree for a grid with cfg.Rows rows and cfg.Cols columns, with
// every cell set to zero. Non-positive dimensions are rejected with
// ErrIllegalArguments.
func New[V Scalar](cfg Config) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		T().Errorf("rectsum: %v", err)
		return nil, err
	}
	t := &Tree[V]{
		n:      cfg.Rows,
		m:      cfg.Cols,
		stride: tableSize(cfg.Cols),
	}
	t.nodes = make([]Node[V], tableSize(cfg.Rows)*t.stride)
	T().Debugf("rectsum: new tree for %d×%d grid, %d nodes", t.n, t.m, len(t.nodes))
	return t, nil
}

// Rows returns the number of rows of the grid.
func (t *Tree[V]) Rows() int {
	return t.n
}

// Cols returns the number of columns of the grid.
func (t *Tree[V]) Cols() int {
	return t.m
}

// Bounds returns the rectangle covering the complete grid.
func (t *Tree[V]) Bounds() Rect {
	return Rect{X0: 0, X1: t.n - 1, Y0: 0, Y1: t.m - 1}
}

// Update adds v to every cell in rows xlo…xhi and columns ylo…yhi, inclusive.
// Invalid rectangles are rejected before the tree is touched.
func (t *Tree[V]) Update(xlo, xhi, ylo, yhi int, v V) error {
	return t.UpdateRect(R(xlo, xhi, ylo, yhi), v)
}

// UpdateRect adds v to every cell in r.
func (t *Tree[V]) UpdateRect(r Rect, v V) error {
	if err := t.check(r); err != nil {
		return err
	}
	T().Debugf("rectsum: update %s += %v", r, v)
	t.updateRows(0, t.rowSpan(), r.rows(), r.cols(), v)
	return nil
}

// Query returns the sum of all cells in rows xlo…xhi and columns ylo…yhi,
// inclusive.
func (t *Tree[V]) Query(xlo, xhi, ylo, yhi int) (V, error) {
	return t.QueryRect(R(xlo, xhi, ylo, yhi))
}

// QueryRect returns the sum of all cells in r.
func (t *Tree[V]) QueryRect(r Rect) (V, error) {
	if err := t.check(r); err != nil {
		return 0, err
	}
	sum := t.queryRows(0, t.rowSpan(), r.rows(), r.cols())
	T().Debugf("rectsum: query %s = %v", r, sum)
	return sum, nil
}

// Cell returns the value of a single cell. This is a query for a 1×1
// rectangle and has no faster path.
func (t *Tree[V]) Cell(x, y int) (V, error) {
	return t.QueryRect(R(x, x, y, y))
}

// Total returns the sum of all cells of the grid.
func (t *Tree[V]) Total() V {
	if t == nil || t.nodes == nil {
		return 0
	}
	return t.queryRows(0, t.rowSpan(), t.rowSpan(), t.colSpan())
}

func (t *Tree[V]) check(r Rect) error {
	if t == nil || t.nodes == nil {
		return ErrIllegalArguments
	}
	if err := r.Validate(t.n, t.m); err != nil {
		T().Errorf("rectsum: %v", err)
		return err
	}
	return nil
}

func (t *Tree[V]) rowSpan() span {
	return span{0, t.n - 1}
}

func (t *Tree[V]) colSpan() span {
	return span{0, t.m - 1}
}
