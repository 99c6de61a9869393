package rectsum

import (
	"fmt"
	"math"
)

// Check validates the node table of a tree.
//
// For every outer node and every inner node with children, the exact sums must
// equal the folded sums of the children plus the node's own rates spread over
// its columns. Records which do not belong to any pair of tree nodes must be
// zero. Float sums are compared with a relative tolerance.
//
// Check visits every record and is intended for tests and debugging.
func (t *Tree[V]) Check() error {
	if t == nil || t.nodes == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if len(t.nodes) != tableSize(t.n)*t.stride || t.stride != tableSize(t.m) {
		return fmt.Errorf("%w: node table has %d records for %d×%d grid",
			ErrInvariant, len(t.nodes), t.n, t.m)
	}
	reached := make([]bool, len(t.nodes))
	if err := t.checkOuter(0, t.rowSpan(), reached); err != nil {
		return err
	}
	for i, r := range reached {
		if !r && !t.nodes[i].IsZero() {
			return fmt.Errorf("%w: orphan record (%d,%d) = %v", ErrInvariant,
				i/t.stride, i%t.stride, t.nodes[i])
		}
	}
	return nil
}

func (t *Tree[V]) checkOuter(outer int, x span, reached []bool) error {
	if err := t.checkInner(outer, 0, x, t.colSpan(), reached); err != nil {
		return err
	}
	if x.isLeaf() {
		return nil
	}
	left, right := x.split()
	if err := t.checkOuter(2*outer+1, left, reached); err != nil {
		return err
	}
	return t.checkOuter(2*outer+2, right, reached)
}

func (t *Tree[V]) checkInner(outer, inner int, x, y span, reached []bool) error {
	reached[outer*t.stride+inner] = true
	if y.isLeaf() {
		return nil
	}
	left, right := y.split()
	if err := t.checkInner(outer, 2*inner+1, x, left, reached); err != nil {
		return err
	}
	if err := t.checkInner(outer, 2*inner+2, x, right, reached); err != nil {
		return err
	}
	node := t.node(outer, inner)
	ln, rn := t.node(outer, 2*inner+1), t.node(outer, 2*inner+2)
	h := V(y.width())
	if pb := ln.PartialBoth + rn.PartialBoth + node.PartialX*h; !same(pb, node.PartialBoth) {
		return fmt.Errorf("%w: rows %v cols %v: partialBoth = %v, children fold to %v",
			ErrInvariant, x, y, node.PartialBoth, pb)
	}
	if py := ln.PartialY + rn.PartialY + node.FullBoth*h; !same(py, node.PartialY) {
		return fmt.Errorf("%w: rows %v cols %v: partialY = %v, children fold to %v",
			ErrInvariant, x, y, node.PartialY, py)
	}
	return nil
}

// same compares two sums, exactly for integer kinds and with a relative
// tolerance for floating point kinds.
func same[V Scalar](a, b V) bool {
	if a == b {
		return true
	}
	if V(1)/V(2) == 0 { // integer kind
		return false
	}
	fa, fb := float64(a), float64(b)
	scale := math.Max(1, math.Max(math.Abs(fa), math.Abs(fb)))
	return math.Abs(fa-fb) <= 1e-5*scale
}
