package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/rectsum"
	"github.com/npillmayer/rectsum/formatter"
	"github.com/npillmayer/schuko/gtrace"
)

const help = `update x0 x1 y0 y1 v | query x0 x1 y0 y1 | cell x y | total
show [x0 x1 y0 y1] | html [x0 x1 y0 y1] | dot [outer] | check | quit`

// maxWindow limits the default window of show and html.
const maxWindow = 24

type session[V rectsum.Scalar] struct {
	tree   *rectsum.Tree[V]
	format *formatter.Config // nil: derive from terminal
}

func newSession[V rectsum.Scalar](cfg rectsum.Config) (*session[V], error) {
	tree, err := rectsum.New[V](cfg)
	if err != nil {
		return nil, err
	}
	return &session[V]{tree: tree}, nil
}

// exec executes a single command line. quit is true if the user asked to leave.
func (s *session[V]) exec(line string, out io.Writer) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	gtrace.CoreTracer.Debugf("rectsum: command %q %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(out, help)
	case "update":
		if len(args) != 5 {
			return false, fmt.Errorf("%w: usage: update x0 x1 y0 y1 v", rectsum.ErrIllegalArguments)
		}
		r, err := parseRect(args[:4])
		if err != nil {
			return false, err
		}
		v, err := parseValue[V](args[4])
		if err != nil {
			return false, err
		}
		return false, s.tree.UpdateRect(r, v)
	case "query":
		if len(args) != 4 {
			return false, fmt.Errorf("%w: usage: query x0 x1 y0 y1", rectsum.ErrIllegalArguments)
		}
		r, err := parseRect(args)
		if err != nil {
			return false, err
		}
		sum, err := s.tree.QueryRect(r)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, sum)
	case "cell":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: usage: cell x y", rectsum.ErrIllegalArguments)
		}
		xy, err := parseInts(args)
		if err != nil {
			return false, err
		}
		v, err := s.tree.Cell(xy[0], xy[1])
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, v)
	case "total":
		fmt.Fprintln(out, s.tree.Total())
	case "show", "html":
		window, err := s.window(args)
		if err != nil {
			return false, err
		}
		if cmd == "html" {
			err = formatter.RenderHTML[V](s.tree, window, out)
			fmt.Fprintln(out)
			return false, err
		}
		config := s.format
		if config == nil {
			config = formatter.ConfigFromTerminal(window.Y1 - window.Y0 + 1)
		}
		return false, formatter.Console[V](s.tree, window, out, config)
	case "dot":
		if len(args) == 0 {
			return false, rectsum.Outer2Dot(s.tree, out)
		}
		outer, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("%w: outer node index %q", rectsum.ErrIllegalArguments, args[0])
		}
		return false, rectsum.Tree2Dot(s.tree, outer, out)
	case "check":
		if err := s.tree.Check(); err != nil {
			return false, err
		}
		fmt.Fprintln(out, "ok")
	default:
		return false, fmt.Errorf("%w: unknown command %q, try 'help'", rectsum.ErrIllegalArguments, cmd)
	}
	return false, nil
}

// window returns the rectangle given by args or, if args is empty, the upper
// left part of the grid.
func (s *session[V]) window(args []string) (rectsum.Rect, error) {
	switch len(args) {
	case 0:
		return rectsum.R(0, min(s.tree.Rows(), maxWindow)-1, 0, min(s.tree.Cols(), maxWindow)-1), nil
	case 4:
		return parseRect(args)
	}
	return rectsum.Rect{}, fmt.Errorf("%w: expected no window or x0 x1 y0 y1", rectsum.ErrIllegalArguments)
}

func parseRect(args []string) (rectsum.Rect, error) {
	c, err := parseInts(args)
	if err != nil {
		return rectsum.Rect{}, err
	}
	return rectsum.R(c[0], c[1], c[2], c[3]), nil
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: not a coordinate: %q", rectsum.ErrIllegalArguments, a)
		}
		ints[i] = n
	}
	return ints, nil
}

func parseValue[V rectsum.Scalar](s string) (V, error) {
	if V(1)/V(2) != 0 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: not a number: %q", rectsum.ErrIllegalArguments, s)
		}
		return V(f), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not an integer: %q", rectsum.ErrIllegalArguments, s)
	}
	return V(n), nil
}
