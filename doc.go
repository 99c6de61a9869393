/*
Package rectsum offers a two-dimensional segment tree for rectangle sums.

Rectangle Sums

A rectsum.Tree indexes a grid of numeric values with n rows and m columns. The
grid starts out all-zero. Clients may add a value to every cell of an
axis-aligned rectangle, and ask for the sum of all cells inside a rectangle.
Both operations run in O(log n · log m), compared to O(area) for a naive
dense grid.

	tree, _ := rectsum.New[int64](rectsum.Config{Rows: 4, Cols: 4})
	tree.Update(0, 3, 0, 3, 5)       // add 5 to the whole grid
	tree.Update(1, 2, 1, 2, 10)      // add 10 to the inner 2×2 block
	sum, _ := tree.Query(1, 2, 1, 2) // = 60

Coordinates are 0-based and inclusive on both ends; x denotes the row,
y denotes the column.

Structure

The tree is a segment tree over rows (the outer tree), where every outer node
owns a complete segment tree over columns (the inner tree). Every pair of
(outer node, inner node) holds four accumulators, two of them rates and two of
them exact sums:

	             y-contained    y-partial
	x-contained   FullBoth       PartialY
	x-partial     PartialX       PartialBoth

Rates are multiplied out lazily, either when an inner node folds its children
after an update, or at query time with the width of the overlap.

All nodes live in a single flat slice of 4n × 4m records, addressed by implicit
binary-tree indices (children of i are 2i+1 and 2i+2). Nothing is allocated
after construction.

A Tree is not safe for concurrent mutation. Package synced provides a locking
wrapper which additionally broadcasts changes to subscribers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rectsum

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the rectsum module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. non-positive grid dimensions or a rectangle with lo > hi.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a coordinate or node index lies
// outside of the grid.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrInvariant is flagged by Check if the node table is inconsistent.
const ErrInvariant = TreeError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
