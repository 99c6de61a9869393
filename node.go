package rectsum

import "fmt"

// Node is the record kept for every pair of (outer node, inner node).
// Let [xLo,xHi] be the rows of the outer node and [yLo,yHi] the columns of
// the inner node.
//
// FullBoth and PartialX are rates, waiting to be multiplied by a width or an
// area. PartialY and PartialBoth are exact sums for the node's column range.
type Node[V Scalar] struct {
	// FullBoth is the pending add-rate per cell of updates which covered all
	// of [xLo,xHi] and all of [yLo,yHi].
	FullBoth V
	// PartialY is the sum per row of updates which covered all of [xLo,xHi],
	// restricted to [yLo,yHi].
	PartialY V
	// PartialX is the pending add-rate per column of updates which covered
	// only some of [xLo,xHi] but all of [yLo,yHi]. It is already scaled by the
	// row overlap.
	PartialX V
	// PartialBoth is the exact sum of updates which covered only some of
	// [xLo,xHi], restricted to [yLo,yHi].
	PartialBoth V
}

// IsZero reports whether all accumulators of n are zero.
func (n Node[V]) IsZero() bool {
	return n.FullBoth == 0 && n.PartialY == 0 && n.PartialX == 0 && n.PartialBoth == 0
}

func (n Node[V]) String() string {
	return fmt.Sprintf("{fb=%v py=%v px=%v pb=%v}", n.FullBoth, n.PartialY, n.PartialX, n.PartialBoth)
}

// node returns the record for (outer, inner). The pointer stays valid for the
// lifetime of the tree, as the table is never re-allocated.
func (t *Tree[V]) node(outer, inner int) *Node[V] {
	return &t.nodes[outer*t.stride+inner]
}

// NodeAt returns a copy of the record for outer node outer and inner node
// inner, together with the row and column ranges they cover. It is intended
// for inspection and debugging.
func (t *Tree[V]) NodeAt(outer, inner int) (Node[V], Rect, error) {
	x, ok := locate(outer, t.rowSpan())
	if !ok {
		return Node[V]{}, Rect{}, fmt.Errorf("%w: no outer node #%d", ErrIndexOutOfBounds, outer)
	}
	y, ok := locate(inner, t.colSpan())
	if !ok {
		return Node[V]{}, Rect{}, fmt.Errorf("%w: no inner node #%d", ErrIndexOutOfBounds, inner)
	}
	assert(outer < tableSize(t.n) && inner < t.stride, "NodeAt: located node outside of table")
	return *t.node(outer, inner), Rect{X0: x.lo, X1: x.hi, Y0: y.lo, Y1: y.hi}, nil
}
