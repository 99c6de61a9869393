/*
Package synced wraps a rectsum.Tree for use by concurrent clients.

A rectsum.Tree mutates shared ancestor nodes on every update and does not
synchronize internally. Grid serializes updates with an exclusive lock, while
queries may run in parallel with each other.

Additionally, Grid broadcasts every committed update as a Change to any
number of subscribers. Subscribers receive changes in commit order, each
tagged with a sequence number. A slow subscriber will slow down updaters, so
subscribers are expected to drain their channel. A subscriber which stops
reading must cancel the context it subscribed with; until then, updates of
the grid block.

	grid, _ := synced.New[int64](rectsum.Config{Rows: 100, Cols: 100})
	defer grid.Close()
	changes, _ := grid.Subscribe(ctx, 16)
	go func() {
	    for c := range changes {
	        log.Printf("#%d: %s += %d", c.Seq, c.Rect, c.Value)
	    }
	}()
	grid.Update(10, 20, 10, 20, 1)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package synced

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
