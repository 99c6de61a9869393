package rectsum

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the inner tree of outer node outer in Graphviz DOT format
// (for debugging purposes). Every inner node is labelled with its column
// range and its four accumulators; nodes holding non-zero values are
// highlighted.
//
// The root of the outer tree has index 0, children of outer node i are 2i+1
// and 2i+2.
func Tree2Dot[V Scalar](tree *Tree[V], outer int, w io.Writer) error {
	if tree == nil || tree.nodes == nil {
		return fmt.Errorf("%w: tree is nil", ErrIllegalArguments)
	}
	x, ok := locate(outer, tree.rowSpan())
	if !ok {
		return fmt.Errorf("%w: no outer node #%d", ErrIndexOutOfBounds, outer)
	}
	var nodelist, edgelist strings.Builder
	var walk func(inner int, y span)
	walk = func(inner int, y span) {
		node := tree.node(outer, inner)
		label := fmt.Sprintf("%v\\nfb=%v py=%v\\npx=%v pb=%v", y,
			node.FullBoth, node.PartialY, node.PartialX, node.PartialBoth)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", inner, label,
			nodeDotStyles(y.isLeaf(), !node.IsZero()))
		if y.isLeaf() {
			return
		}
		left, right := y.split()
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", inner, 2*inner+1)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", inner, 2*inner+2)
		walk(2*inner+1, left)
		walk(2*inner+2, right)
	}
	walk(0, tree.colSpan())
	return writeDot(w, fmt.Sprintf("rows %v", x), nodelist.String(), edgelist.String())
}

// Outer2Dot outputs the outer tree in Graphviz DOT format. Every outer node
// is labelled with its index, its row range, and the exact sums held at the
// root of its inner tree.
func Outer2Dot[V Scalar](tree *Tree[V], w io.Writer) error {
	if tree == nil || tree.nodes == nil {
		return fmt.Errorf("%w: tree is nil", ErrIllegalArguments)
	}
	var nodelist, edgelist strings.Builder
	var walk func(outer int, x span)
	walk = func(outer int, x span) {
		root := tree.node(outer, 0)
		label := fmt.Sprintf("#%d %v\\npy=%v pb=%v", outer, x, root.PartialY, root.PartialBoth)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", outer, label,
			nodeDotStyles(x.isLeaf(), !root.IsZero()))
		if x.isLeaf() {
			return
		}
		left, right := x.split()
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", outer, 2*outer+1)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", outer, 2*outer+2)
		walk(2*outer+1, left)
		walk(2*outer+2, right)
	}
	walk(0, tree.rowSpan())
	return writeDot(w, "outer tree", nodelist.String(), edgelist.String())
}

func writeDot(w io.Writer, title, nodelist, edgelist string) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	fmt.Fprintf(&b, "\tlabel=\"%s\";\n", title)
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		T().Errorf("rectsum DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=ellipse"
	}
	if highlight {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
