// Command svgtree parses a Newick tree file, lays it out along the
// leaf axis, and either prints the result or renders it as SVG. It is
// a minimal stand-in for the rendering side of the library boundary:
// it supplies the Collapsed annotations before layout and consumes
// positions and depths after it.
package main

import (
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheWizz/svgtree/layout"
	"github.com/TheWizz/svgtree/newick"
	"github.com/TheWizz/svgtree/tree"
)

var collapse []string

var rootCmd = &cobra.Command{
	Use:   "svgtree [command] (flags)",
	Short: "svgtree Newick layout tool",
	Long:  ``,
}

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "parse and lay out a Newick file, printing one node per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

var svgCmd = &cobra.Command{
	Use:   "svg <file>",
	Short: "parse and lay out a Newick file, rendering SVG to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runSVG,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(printCmd, svgCmd)
	for _, cmd := range []*cobra.Command{printCmd, svgCmd} {
		cmd.Flags().StringArrayVar(
			&collapse, "collapse", nil, "label of a node to collapse before layout (repeatable)")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads a Newick file and lays out its tree. Parsing is lenient:
// malformed input degrades to a single leaf holding the raw text.
func load(path string) (*tree.Node, *layout.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	root := tree.New("")
	newick.ParseIntoLenient(
		strings.TrimSpace(string(data)), root, newick.NodeFactoryFunc(tree.New))

	for _, label := range collapse {
		if n := root.Find(label); n != nil {
			n.Collapsed = true
		}
	}
	return root, layout.Compute(root), nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	root, res, err := load(args[0])
	if err != nil {
		return err
	}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		pos, ok := res.Position(n)
		if !ok {
			return
		}
		name := n.Label
		if len(name) == 0 {
			name = "N/A"
		}
		fmt.Printf("%s%s depth=%d x=%g\n",
			strings.Repeat("  ", n.Depth()), name, n.Depth(), pos)
		if n.Collapsed {
			return
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)
	return nil
}

// SVG rendering constants: depth maps to x, leaf-axis position to y.
const (
	stepX   = 96
	stepY   = 28
	padding = 24
	radius  = 3
)

func runSVG(cmd *cobra.Command, args []string) error {
	root, res, err := load(args[0])
	if err != nil {
		return err
	}

	maxDepth, maxPos := 0, 0.0
	var measure func(n *tree.Node)
	measure = func(n *tree.Node) {
		pos, ok := res.Position(n)
		if !ok {
			return
		}
		if d := n.Depth(); d > maxDepth {
			maxDepth = d
		}
		if pos > maxPos {
			maxPos = pos
		}
		for _, child := range n.Children() {
			measure(child)
		}
	}
	measure(root)

	buf := new(strings.Builder)
	fmt.Fprintf(buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n",
		maxDepth*stepX+2*padding+120, int(maxPos*stepY)+2*padding)

	x := func(n *tree.Node) int { return padding + n.Depth()*stepX }
	y := func(pos float64) int { return padding + int(pos*stepY) }

	var draw func(n *tree.Node)
	draw = func(n *tree.Node) {
		pos, ok := res.Position(n)
		if !ok {
			return
		}
		if p := n.Parent(); p != nil {
			ppos, _ := res.Position(p)
			fmt.Fprintf(buf,
				"  <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"black\"/>\n",
				x(p), y(ppos), x(n), y(pos))
		}
		fmt.Fprintf(buf, "  <circle cx=\"%d\" cy=\"%d\" r=\"%d\"/>\n",
			x(n), y(pos), radius)
		if len(n.Label) > 0 {
			fmt.Fprintf(buf,
				"  <text x=\"%d\" y=\"%d\" font-size=\"12\">%s</text>\n",
				x(n)+2*radius, y(pos)-radius, html.EscapeString(n.Label))
		}
		if n.Collapsed {
			return
		}
		for _, child := range n.Children() {
			draw(child)
		}
	}
	draw(root)

	buf.WriteString("</svg>\n")
	_, err = os.Stdout.WriteString(buf.String())
	return err
}
