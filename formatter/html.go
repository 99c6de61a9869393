package formatter

import (
	"fmt"
	"io"

	"github.com/npillmayer/rectsum"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLTable creates an HTML <table> element for a window of a grid.
//
// The table has a header row of column indices, and every row starts with a
// <th> holding the row index. Cells carry a class of either "zero", "pos"
// or "neg", for styling with CSS, and a title with the cell's coordinates.
func HTMLTable[V rectsum.Scalar](src Source[V], window rectsum.Rect) (*html.Node, error) {
	cells, err := Cells(src, window)
	if err != nil {
		return nil, err
	}
	table := element(atom.Table, html.Attribute{Key: "class", Val: "rectsum"})
	head := element(atom.Tr)
	head.AppendChild(element(atom.Th))
	for y := window.Y0; y <= window.Y1; y++ {
		head.AppendChild(withText(element(atom.Th), fmt.Sprint(y)))
	}
	table.AppendChild(head)
	for i, row := range cells {
		x := window.X0 + i
		tr := element(atom.Tr)
		tr.AppendChild(withText(element(atom.Th), fmt.Sprint(x)))
		for j, v := range row {
			td := element(atom.Td,
				html.Attribute{Key: "class", Val: cellClass(v)},
				html.Attribute{Key: "title", Val: fmt.Sprintf("(%d,%d)", x, window.Y0+j)},
			)
			tr.AppendChild(withText(td, label(v)))
		}
		table.AppendChild(tr)
	}
	return table, nil
}

// RenderHTML writes a window of a grid as an HTML table to w.
func RenderHTML[V rectsum.Scalar](src Source[V], window rectsum.Rect, w io.Writer) error {
	table, err := HTMLTable(src, window)
	if err != nil {
		return err
	}
	T().P("format", "html").Debugf("rendering window %s", window)
	return html.Render(w, table)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func cellClass[V rectsum.Scalar](v V) string {
	switch {
	case v > 0:
		return "pos"
	case v < 0:
		return "neg"
	}
	return "zero"
}
