/*
Package formatter outputs windows of a rectangle-sum grid, either to a
console with a fixed width font or as an HTML table.

Every cell of the window is rendered with its current value. Values are
obtained through 1×1 queries, so formatting a window costs
O(area · log n · log m); this package is meant for inspection and debugging
of moderately sized windows, not for bulk export.

Console output colours cells by sign and magnitude (a simple heat map) and
pads labels according to their display width (UAX#11), as cell labels may
contain characters other than ASCII digits.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
