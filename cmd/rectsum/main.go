/*
Command rectsum is an interactive shell for a rectangle-sum grid.

Usage:

	rectsum [-rows n] [-cols m] [-float] [-trace level]

Commands are read line by line from stdin:

	update x0 x1 y0 y1 v   add v to every cell of the rectangle
	query x0 x1 y0 y1      sum of all cells of the rectangle
	cell x y               value of a single cell
	total                  sum of the whole grid
	show [x0 x1 y0 y1]     print (a window of) the grid
	html [x0 x1 y0 y1]     print (a window of) the grid as an HTML table
	dot [outer]            Graphviz output of the outer tree, or of an inner tree
	check                  validate the node table
	help                   list commands
	quit                   leave

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rectsum"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

func main() {
	rows := flag.Int("rows", 8, "number of rows of the grid")
	cols := flag.Int("cols", 8, "number of columns of the grid")
	float := flag.Bool("float", false, "use floating point values instead of integers")
	tlevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Parse()
	//
	gtrace.CoreTracer = gologadapter.New()
	level := tracing.LevelError
	switch strings.ToLower(*tlevel) {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	//
	cfg := rectsum.Config{Rows: *rows, Cols: *cols}
	var err error
	if *float {
		err = run[float64](cfg, os.Stdin, os.Stdout)
	} else {
		err = run[int64](cfg, os.Stdin, os.Stdout)
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "rectsum: %v\n", err)
		os.Exit(1)
	}
}

// run executes commands read from in. A prompt is printed only if in is a
// terminal.
func run[V rectsum.Scalar](cfg rectsum.Config, in io.Reader, out io.Writer) error {
	s, err := newSession[V](cfg)
	if err != nil {
		return err
	}
	interactive := isTerminal(in)
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := s.exec(scanner.Text(), out)
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
