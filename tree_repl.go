// tree_repl.go

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ordercli/recaller/avl"
)

// runTreeRepl drives a line-oriented insert/erase/find/print loop over
// an avl.Set[string], reading commands from in and writing results to
// out. Recognized commands: "insert <key>", "erase <key>",
// "find <key>", "print", "keys", "quit".
func runTreeRepl(in io.Reader, out io.Writer) error {
	set := avl.NewOrdered[string]()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "recaller tree: insert/erase/find/print/keys/quit")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "quit", "exit":
			return nil
		case "insert":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: insert <key>")
				continue
			}
			added := set.Insert(fields[1])
			fmt.Fprintf(out, "inserted=%v count=%d size=%d\n", added, set.Count(fields[1]), set.Size())
		case "erase":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: erase <key>")
				continue
			}
			removed := set.Erase(fields[1])
			fmt.Fprintf(out, "removed=%v size=%d\n", removed, set.Size())
		case "find":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: find <key>")
				continue
			}
			fmt.Fprintf(out, "present=%v count=%d\n", set.Contains(fields[1]), set.Count(fields[1]))
		case "print":
			set.PrintTree(out)
		case "keys":
			fmt.Fprintln(out, strings.Join(set.Keys(), " "))
		default:
			fmt.Fprintf(out, "unknown command: %s\n", cmd)
		}
	}
}

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Interactive insert/erase/find/print loop over the AVL set, for exploring rebalancing behavior",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeRepl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
