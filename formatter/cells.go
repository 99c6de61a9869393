package formatter

import (
	"strconv"

	"github.com/npillmayer/rectsum"
)

// Source is a grid which can be formatted. Both *rectsum.Tree and
// *synced.Grid are sources.
type Source[V rectsum.Scalar] interface {
	Rows() int
	Cols() int
	QueryRect(rectsum.Rect) (V, error)
}

// ZeroLabel is the label of cells with value 0.
const ZeroLabel = "·"

// Cells collects the values of all cells in window, row by row.
func Cells[V rectsum.Scalar](src Source[V], window rectsum.Rect) ([][]V, error) {
	if err := window.Validate(src.Rows(), src.Cols()); err != nil {
		return nil, err
	}
	cells := make([][]V, window.X1-window.X0+1)
	for i := range cells {
		x := window.X0 + i
		cells[i] = make([]V, window.Y1-window.Y0+1)
		for j := range cells[i] {
			y := window.Y0 + j
			v, err := src.QueryRect(rectsum.R(x, x, y, y))
			if err != nil {
				return nil, err
			}
			cells[i][j] = v
		}
	}
	return cells, nil
}

// label returns the textual representation of a cell value.
func label[V rectsum.Scalar](v V) string {
	if v == 0 {
		return ZeroLabel
	}
	if V(1)/V(2) != 0 {
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	return strconv.FormatInt(int64(v), 10)
}

// magnitude returns the largest absolute value of cells, as float64.
func magnitude[V rectsum.Scalar](cells [][]V) float64 {
	var m float64
	for _, row := range cells {
		for _, v := range row {
			f := float64(v)
			if f < 0 {
				f = -f
			}
			if f > m {
				m = f
			}
		}
	}
	return m
}
