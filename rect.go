package rectsum

import "fmt"

// Rect is an axis-aligned rectangle of grid cells. Both ranges are inclusive:
// Rect{X0: 1, X1: 2, Y0: 0, Y1: 0} covers the cells (1,0) and (2,0).
type Rect struct {
	X0, X1 int // first and last row
	Y0, Y1 int // first and last column
}

// R is a shortcut for creating a rectangle from row and column bounds.
func R(x0, x1, y0, y1 int) Rect {
	return Rect{X0: x0, X1: x1, Y0: y0, Y1: y1}
}

// Area returns the number of cells covered by r.
// A rectangle with inverted bounds has area 0.
func (r Rect) Area() int {
	return r.rows().width() * r.cols().width()
}

// Intersect returns the common cells of r and o. If r and o do not overlap,
// ok is false.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if r.rows().disjoint(o.rows()) || r.cols().disjoint(o.cols()) {
		return Rect{}, false
	}
	x, y := r.rows().clip(o.rows()), r.cols().clip(o.cols())
	return Rect{X0: x.lo, X1: x.hi, Y0: y.lo, Y1: y.hi}, true
}

// Contains reports whether cell (x,y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return r.X0 <= x && x <= r.X1 && r.Y0 <= y && y <= r.Y1
}

// Validate checks r against a grid with the given number of rows and columns.
// Inverted ranges are reported as ErrIllegalArguments, coordinates outside
// of the grid as ErrIndexOutOfBounds.
func (r Rect) Validate(rows, cols int) error {
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return fmt.Errorf("%w: inverted rectangle %s", ErrIllegalArguments, r)
	}
	if r.X0 < 0 || r.X1 >= rows || r.Y0 < 0 || r.Y1 >= cols {
		return fmt.Errorf("%w: rectangle %s outside of %d×%d grid",
			ErrIndexOutOfBounds, r, rows, cols)
	}
	return nil
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d…%d]×[%d…%d]", r.X0, r.X1, r.Y0, r.Y1)
}

func (r Rect) rows() span { return span{r.X0, r.X1} }
func (r Rect) cols() span { return span{r.Y0, r.Y1} }

// --- Spans -----------------------------------------------------------------

// span is an inclusive range of rows or columns, covered by a node of either
// the outer or the inner tree.
type span struct {
	lo, hi int
}

func (s span) width() int {
	if s.hi < s.lo {
		return 0
	}
	return s.hi - s.lo + 1
}

func (s span) disjoint(q span) bool {
	return q.hi < s.lo || s.hi < q.lo
}

// within reports whether s is fully covered by q.
func (s span) within(q span) bool {
	return q.lo <= s.lo && s.hi <= q.hi
}

func (s span) clip(q span) span {
	return span{max(s.lo, q.lo), min(s.hi, q.hi)}
}

func (s span) isLeaf() bool {
	return s.lo == s.hi
}

// split halves s the way the segment tree does: the left child gets the
// middle element.
func (s span) split() (span, span) {
	mid := (s.lo + s.hi) / 2
	return span{s.lo, mid}, span{mid + 1, s.hi}
}

// locate finds the range covered by the node with implicit index inx within
// a tree spanning root. ok is false if inx does not denote a node of the tree.
func locate(inx int, root span) (s span, ok bool) {
	if inx < 0 {
		return span{}, false
	}
	var path []bool // true for right turns, leaf to root
	for i := inx; i > 0; i = (i - 1) / 2 {
		path = append(path, i%2 == 0)
	}
	s = root
	for k := len(path) - 1; k >= 0; k-- {
		if s.isLeaf() {
			return span{}, false
		}
		l, r := s.split()
		if path[k] {
			s = r
		} else {
			s = l
		}
	}
	return s, true
}

func (s span) String() string {
	return fmt.Sprintf("[%d…%d]", s.lo, s.hi)
}
