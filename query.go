package rectsum

// queryRows descends the outer tree. x is the row range of outer node outer,
// qx and qy are the bounds of the query rectangle.
func (t *Tree[V]) queryRows(outer int, x, qx, qy span) V {
	if x.disjoint(qx) {
		return 0
	}
	if x.within(qx) {
		return t.queryCols(outer, 0, x, t.colSpan(), qx, qy)
	}
	left, right := x.split()
	sum := t.queryRows(2*outer+1, left, qx, qy)
	sum += t.queryRows(2*outer+2, right, qx, qy)
	// updates which covered all of x are recorded here only; ask for them with
	// the clipped row overlap
	return sum + t.queryCols(outer, 0, x, t.colSpan(), x.clip(qx), qy)
}

// queryCols descends the inner tree of outer node outer. x is the row range
// of the outer node, y the column range of inner node inner. qx is either a
// superset of x or, for partially covered outer nodes, the clipped row overlap.
func (t *Tree[V]) queryCols(outer, inner int, x, y, qx, qy span) V {
	if y.disjoint(qy) {
		return 0
	}
	node := t.node(outer, inner)
	rowsCovered := x.within(qx)
	if y.within(qy) {
		if rowsCovered {
			return node.PartialBoth + node.PartialY*V(x.width())
		}
		return node.PartialY * V(qx.width())
	}
	tx, ty := x.clip(qx), y.clip(qy)
	lazy := node.FullBoth * V(tx.width()) * V(ty.width())
	if rowsCovered {
		lazy += node.PartialX * V(ty.width())
	}
	left, right := y.split()
	sum := t.queryCols(outer, 2*inner+1, x, left, qx, qy)
	sum += t.queryCols(outer, 2*inner+2, x, right, qx, qy)
	return sum + lazy
}
