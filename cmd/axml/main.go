package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/axisml/axisml"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "axml",
		Short: "Inspect markup as an event stream or a document tree",
	}

	var strict bool
	var preserveWS bool
	eventsCmd := &cobra.Command{
		Use:   "events <file>",
		Short: "Stream the tokens of a document, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			errs := 0
			opts := []axisml.ReaderOption{
				axisml.WithErrorHandler(func(pos int) {
					errs++
					fmt.Fprintf(os.Stderr, "parse error at byte %d\n", pos)
				}),
			}
			if preserveWS {
				opts = append(opts, axisml.PreserveWhitespace())
			}
			r := axisml.NewReader(text, opts...)
			for r.Next() {
				printToken(r)
			}
			if strict && errs > 0 {
				return fmt.Errorf("%d parse error(s)", errs)
			}
			return nil
		},
	}
	eventsCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when parse errors occur")
	eventsCmd.Flags().BoolVar(&preserveWS, "preserve-whitespace", false, "emit whitespace-only text tokens")

	var axesOf string
	treeCmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Parse a document and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			doc := axisml.BuildTree(text)
			printTree(doc, 0)
			if axesOf == "" {
				return nil
			}
			n := findElement(doc, axesOf)
			if n == nil {
				return fmt.Errorf("no element named %q", axesOf)
			}
			printAxis("ancestors", n.Ancestors())
			printAxis("descendants", n.Descendants())
			printAxis("preceding", n.Preceding())
			printAxis("following", n.Following())
			return nil
		},
	}
	treeCmd.Flags().StringVar(&axesOf, "axes", "", "also print the four axes of the first element with this name")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(treeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(arg string) (string, error) {
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", arg, err)
	}
	return string(b), nil
}

func printToken(r *axisml.Reader) {
	switch r.Kind() {
	case axisml.TokenStartElement:
		closing := ""
		if r.SelfClosing() {
			closing = " self-closing"
		}
		fmt.Printf("%5d %*s%s %v%s\n", r.Pos(), r.Depth()*2, "", r.Kind(), r.Name(), closing)
		for _, a := range r.Attrs() {
			fmt.Printf("%5s %*s@%v=%q\n", "", r.Depth()*2, "", a.Name, a.Value)
		}
	case axisml.TokenEndElement:
		fmt.Printf("%5d %*s%s %v\n", r.Pos(), (r.Depth()+1)*2, "", r.Kind(), r.Name())
	case axisml.TokenProcInst:
		fmt.Printf("%5d %*s%s %s %q\n", r.Pos(), (r.Depth()+1)*2, "", r.Kind(), r.Target(), excerpt(r.Value()))
	default:
		fmt.Printf("%5d %*s%s %q\n", r.Pos(), (r.Depth()+1)*2, "", r.Kind(), excerpt(r.Value()))
	}
}

func printTree(n *axisml.Node, indent int) {
	fmt.Printf("%*s%s\n", indent*2, "", n)
	for _, a := range n.Attrs {
		fmt.Printf("%*s%s\n", (indent+1)*2, "", a)
	}
	for _, c := range n.Children {
		printTree(c, indent+1)
	}
}

func printAxis(name string, it *axisml.NodeIter) {
	var parts []string
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		parts = append(parts, n.String())
	}
	fmt.Printf("%s: [%s]\n", name, strings.Join(parts, ", "))
}

func findElement(n *axisml.Node, name string) *axisml.Node {
	if n.Kind == axisml.NodeElement && n.Name.Local == name {
		return n
	}
	for _, c := range n.Children {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func excerpt(s string) string {
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}
