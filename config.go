package rectsum

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
)

// Scalar is the additive domain of grid values. A tree does not detect
// overflow; clients with large sums should choose int64 or float64.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Config configures the dimensions of a grid.
type Config struct {
	Rows int // number of rows, i.e. extent of the x dimension
	Cols int // number of columns, i.e. extent of the y dimension
}

func (cfg Config) validate() error {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive, have %d×%d",
			ErrIllegalArguments, cfg.Rows, cfg.Cols)
	}
	if cfg.Rows > math.MaxInt/16/cfg.Cols {
		return fmt.Errorf("%w: grid of %d×%d exceeds addressable node table",
			ErrIllegalArguments, cfg.Rows, cfg.Cols)
	}
	return nil
}

// tableSize is the number of node records allocated for one dimension with
// ext leaves.
func tableSize(ext int) int {
	return 4 * ext
}
