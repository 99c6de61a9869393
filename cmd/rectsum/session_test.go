package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/rectsum"
	"github.com/npillmayer/rectsum/formatter"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSessionCommands(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := newSession[int64](rectsum.Config{Rows: 4, Cols: 4})
	if err != nil {
		t.Fatal(err.Error())
	}
	script := []struct {
		line   string
		output string
	}{
		{"update 0 3 0 3 5", ""},
		{"query 0 3 0 3", "80\n"},
		{"update 1 2 1 2 10", ""},
		{"query 1 2 1 2", "60\n"},
		{"cell 0 0", "5\n"},
		{"total", "120\n"},
		{"# a comment", ""},
		{"", ""},
		{"check", "ok\n"},
	}
	for _, step := range script {
		var b strings.Builder
		quit, err := s.exec(step.line, &b)
		if err != nil || quit {
			t.Fatalf("%q: quit=%v, err=%v", step.line, quit, err)
		}
		if b.String() != step.output {
			t.Errorf("%q: expected output %q, have %q", step.line, step.output, b.String())
		}
	}
	if quit, _ := s.exec("quit", &strings.Builder{}); !quit {
		t.Errorf("expected quit command to end the session")
	}
}

func TestSessionRejectsBadInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, _ := newSession[int64](rectsum.Config{Rows: 4, Cols: 4})
	for line, expected := range map[string]error{
		"update 0 3 0 3":     rectsum.ErrIllegalArguments,
		"update 0 3 0 x 1":   rectsum.ErrIllegalArguments,
		"update 0 3 0 3 1.5": rectsum.ErrIllegalArguments,
		"update 0 4 0 3 1":   rectsum.ErrIndexOutOfBounds,
		"query 3 2 0 0":      rectsum.ErrIllegalArguments,
		"cell 0":             rectsum.ErrIllegalArguments,
		"show 0 1":           rectsum.ErrIllegalArguments,
		"dot 99":             rectsum.ErrIndexOutOfBounds,
		"frobnicate":         rectsum.ErrIllegalArguments,
		"query -1 0 0 0":     rectsum.ErrIndexOutOfBounds,
	} {
		if _, err := s.exec(line, &strings.Builder{}); !errors.Is(err, expected) {
			t.Errorf("%q: expected %v, got %v", line, expected, err)
		}
	}
	if total := s.tree.Total(); total != 0 {
		t.Errorf("rejected commands changed the grid, total is %d", total)
	}
}

func TestSessionFloatAndOutput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	s, _ := newSession[float64](rectsum.Config{Rows: 2, Cols: 3})
	s.format = &formatter.Config{CellWidth: 5, Plain: true}
	if _, err := s.exec("update 0 0 1 2 0.5", &strings.Builder{}); err != nil {
		t.Fatal(err.Error())
	}
	var b strings.Builder
	if _, err := s.exec("show", &b); err != nil {
		t.Fatal(err.Error())
	}
	expected := "       0    1    2\n" +
		" 0     ·  0.5  0.5\n" +
		" 1     ·    ·    ·\n"
	if b.String() != expected {
		t.Errorf("unexpected show output:\n%q\nexpected:\n%q", b.String(), expected)
	}
	b.Reset()
	if _, err := s.exec("html 0 0 1 1", &b); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.Contains(b.String(), `<td class="pos" title="(0,1)">0.5</td>`) {
		t.Errorf("unexpected html output %q", b.String())
	}
	b.Reset()
	if _, err := s.exec("dot", &b); err != nil || !strings.HasPrefix(b.String(), "strict digraph") {
		t.Errorf("expected DOT output, have %q (%v)", b.String(), err)
	}
	b.Reset()
	if _, err := s.exec("dot 1", &b); err != nil || !strings.Contains(b.String(), "rows [0…0]") {
		t.Errorf("expected DOT output for outer node #1, have %q (%v)", b.String(), err)
	}
}

func TestParseValue(t *testing.T) {
	if v, err := parseValue[int64]("-12"); err != nil || v != -12 {
		t.Errorf("expected -12, have %d (%v)", v, err)
	}
	if v, err := parseValue[float64]("2.25"); err != nil || v != 2.25 {
		t.Errorf("expected 2.25, have %g (%v)", v, err)
	}
	if _, err := parseValue[int]("2.25"); !errors.Is(err, rectsum.ErrIllegalArguments) {
		t.Errorf("expected integer grid to reject 2.25")
	}
}

func TestRunReadsScriptWithoutPrompt(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	script := "update 0 3 0 3 5\nquery 0 3 0 3\nquit\ntotal\n"
	var b strings.Builder
	if err := run[int64](rectsum.Config{Rows: 4, Cols: 4}, strings.NewReader(script), &b); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "80\n" {
		t.Errorf("expected output of query only, have %q", b.String())
	}
	//
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err.Error())
	}
	defer r.Close()
	if _, err := w.WriteString("query 0 0 0 0\n"); err != nil {
		t.Fatal(err.Error())
	}
	w.Close()
	b.Reset()
	if err := run[int64](rectsum.Config{Rows: 2, Cols: 2}, r, &b); err != nil {
		t.Fatal(err.Error())
	}
	if b.String() != "0\n" {
		t.Errorf("expected no prompt when reading from a pipe, have %q", b.String())
	}
}
