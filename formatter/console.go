package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rectsum"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used to display cell values. Cells with an
// absolute value of at least half of the window's maximum are considered hot.
type Palette struct {
	Zero     *color.Color
	Positive *color.Color
	HotPos   *color.Color
	Negative *color.Color
	HotNeg   *color.Color
	Header   *color.Color
}

// DefaultPalette is a palette for terminals with a dark background.
func DefaultPalette() *Palette {
	return &Palette{
		Zero:     color.New(color.FgHiBlack),
		Positive: color.New(color.FgGreen),
		HotPos:   color.New(color.FgHiGreen, color.Bold),
		Negative: color.New(color.FgRed),
		HotNeg:   color.New(color.FgHiRed, color.Bold),
		Header:   color.New(color.FgCyan),
	}
}

// Config configures console output.
type Config struct {
	CellWidth int            // width of a cell in fixed width ‘en’s, including a separating space
	Plain     bool           // do not use colors
	Palette   *Palette       // colors, DefaultPalette() if nil
	Context   *uax11.Context // context for display widths, uax11.LatinContext if nil
}

var setupGraphemes sync.Once

func (config *Config) normalized() *Config {
	c := Config{CellWidth: 6}
	if config != nil {
		c = *config
	}
	if c.CellWidth < 2 {
		c.CellWidth = 2
	}
	if c.Palette == nil {
		c.Palette = DefaultPalette()
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// Print outputs a window of a grid to stdout.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func Print[V rectsum.Scalar](src Source[V], window rectsum.Rect, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal(window.Y1 - window.Y0 + 1)
	}
	return Console(src, window, os.Stdout, config)
}

// Console outputs a window of a grid to w, one line per row, prefixed by the
// row index and preceded by a line of column indices. Values which do not fit
// into config.CellWidth are truncated with an ellipsis.
func Console[V rectsum.Scalar](src Source[V], window rectsum.Rect, w io.Writer, config *Config) error {
	cells, err := Cells(src, window)
	if err != nil {
		return err
	}
	config = config.normalized()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	rowhdr := len(fmt.Sprint(window.X1)) + 1
	hot := magnitude(cells) / 2
	T().P("format", "console").Debugf("printing window %s, hot threshold %g", window, hot)
	//
	var bf strings.Builder
	bf.WriteString(strings.Repeat(" ", rowhdr+1))
	for y := window.Y0; y <= window.Y1; y++ {
		colored(&bf, config.Palette.Header, pad(fmt.Sprint(y), config), config.Plain)
	}
	bf.WriteString("\n")
	for i, row := range cells {
		rh := fmt.Sprint(window.X0 + i)
		colored(&bf, config.Palette.Header, strings.Repeat(" ", rowhdr-len(rh))+rh+" ", config.Plain)
		for _, v := range row {
			colored(&bf, config.Palette.pick(float64(v), hot), pad(label(v), config), config.Plain)
		}
		bf.WriteString("\n")
	}
	_, err = io.WriteString(w, bf.String())
	return err
}

func (p *Palette) pick(v float64, hot float64) *color.Color {
	switch {
	case v == 0:
		return p.Zero
	case v > 0 && v >= hot:
		return p.HotPos
	case v > 0:
		return p.Positive
	case -v >= hot:
		return p.HotNeg
	}
	return p.Negative
}

func colored(w io.Writer, c *color.Color, s string, plain bool) {
	if plain || c == nil {
		io.WriteString(w, s)
		return
	}
	c.Fprint(w, s)
}

// pad right-aligns s within config.CellWidth display positions, measured
// according to UAX#11. Overlong labels are cut and marked with an ellipsis.
func pad(s string, config *Config) string {
	width := displayWidth(s, config)
	if width >= config.CellWidth {
		runes := []rune(s)
		for width >= config.CellWidth && len(runes) > 0 {
			runes = runes[:len(runes)-1]
			width = displayWidth(string(runes)+"…", config)
		}
		s = string(runes) + "…"
	}
	return strings.Repeat(" ", max(0, config.CellWidth-width)) + s
}

// displayWidth sums the widths of the graphemes of s. ASCII graphemes are
// narrow; uax11 classifies digits as emoji keycap bases and would report them
// as wide.
func displayWidth(s string, config *Config) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	width := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			width++
			continue
		}
		width += uax11.Width([]byte(g), config.Context)
	}
	return width
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and distributes it among cols cells.
func ConfigFromTerminal(cols int) *Config {
	config := &Config{CellWidth: 6}
	if cols < 1 {
		cols = 1
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			config.CellWidth = min(max((w-6)/cols, 3), 12)
		}
	} else {
		config.Plain = true
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting cell width to %d en", config.CellWidth)
	return config
}
