package rectsum

// updateRows descends the outer tree. x is the row range of outer node
// outer, qx and qy are the bounds of the update rectangle.
func (t *Tree[V]) updateRows(outer int, x, qx, qy span, v V) {
	if x.disjoint(qx) {
		return
	}
	if x.within(qx) {
		// rows fully covered: record at this node's inner tree and stop
		t.updateCols(outer, 0, x, t.colSpan(), qx, qy, v, true)
		return
	}
	left, right := x.split()
	t.updateRows(2*outer+1, left, qx, qy, v)
	t.updateRows(2*outer+2, right, qx, qy, v)
	// this node's own share of a partial row overlap
	t.updateCols(outer, 0, x, t.colSpan(), qx, qy, v, false)
}

// updateCols descends the inner tree of outer node outer. x is fixed for the
// whole descent, y is the column range of inner node inner. covered tells if
// the update's rows cover all of x.
func (t *Tree[V]) updateCols(outer, inner int, x, y, qx, qy span, v V, covered bool) {
	if y.disjoint(qy) {
		return
	}
	node := t.node(outer, inner)
	h := V(y.width())
	if y.within(qy) {
		if covered {
			node.FullBoth += v
			node.PartialY += v * h
		} else {
			w := V(x.clip(qx).width())
			node.PartialX += v * w
			node.PartialBoth += v * w * h
		}
		return
	}
	assert(!y.isLeaf(), "updateCols: partial overlap at leaf")
	left, right := y.split()
	l, r := 2*inner+1, 2*inner+2
	t.updateCols(outer, l, x, left, qx, qy, v, covered)
	t.updateCols(outer, r, x, right, qx, qy, v, covered)
	t.fold(outer, inner, h)
}

// fold recomputes the exact sums of an inner node from its children, spreading
// the node's own pending rates over its h columns.
func (t *Tree[V]) fold(outer, inner int, h V) {
	node := t.node(outer, inner)
	ln, rn := t.node(outer, 2*inner+1), t.node(outer, 2*inner+2)
	node.PartialBoth = ln.PartialBoth + rn.PartialBoth + node.PartialX*h
	node.PartialY = ln.PartialY + rn.PartialY + node.FullBoth*h
}
