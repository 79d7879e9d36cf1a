// bench.go

package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ordercli/recaller/avl"
)

// loadWordList reads one word per line from path, the same
// line-at-a-time scanning style readHistoryAndPopulateTree uses for
// shell history files.
func loadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// benchReport is the markdown rendered at the end of a run, giving the
// rotation counters a reader-facing shape rather than a raw struct dump.
func benchReport(words int, insertElapsed, eraseElapsed time.Duration, c avl.Counters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tree benchmark\n\n")
	fmt.Fprintf(&b, "- words: **%d**\n", words)
	fmt.Fprintf(&b, "- insert: **%s** (%.0f ops/sec)\n", insertElapsed, float64(words)/insertElapsed.Seconds())
	fmt.Fprintf(&b, "- erase: **%s** (%.0f ops/sec)\n\n", eraseElapsed, float64(words)/eraseElapsed.Seconds())
	fmt.Fprintf(&b, "## Rotation counters\n\n")
	fmt.Fprintf(&b, "| shape | insert | erase |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| LL | %d | %d |\n", c.Lli, c.Lle)
	fmt.Fprintf(&b, "| LR | %d | %d |\n", c.Lri, c.Lre)
	fmt.Fprintf(&b, "| RL | %d | %d |\n", c.Rli, c.Rle)
	fmt.Fprintf(&b, "| RR | %d | %d |\n", c.Rri, c.Rre)
	return b.String()
}

func runBench(wordListPath string, shuffle bool) error {
	words, err := loadWordList(wordListPath)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("word list %s is empty", wordListPath)
	}

	if shuffle {
		rand.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	}

	tree := avl.NewOrderedMap[string, int]()

	bar := progressbar.NewOptions(len(words),
		progressbar.OptionSetDescription("inserting"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
	)

	insertStart := time.Now()
	for i, w := range words {
		tree.Insert(w, i)
		bar.Add(1)
	}
	insertElapsed := time.Since(insertStart)
	bar.Finish()

	bar = progressbar.NewOptions(len(words),
		progressbar.OptionSetDescription("erasing"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
	)

	eraseStart := time.Now()
	for _, w := range words {
		tree.Erase(w)
		bar.Add(1)
	}
	eraseElapsed := time.Since(eraseStart)
	bar.Finish()

	report := benchReport(len(words), insertElapsed, eraseElapsed, tree.Counters())
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(88))
	if err == nil {
		if rendered, err := renderer.Render(report); err == nil {
			fmt.Print(rendered)
			return nil
		}
	}
	fmt.Print(report)
	return nil
}

func newBenchCommand() *cobra.Command {
	var shuffle bool

	cmd := &cobra.Command{
		Use:   "bench <word-list-file>",
		Short: "Time insert/erase of every word in a file against the AVL core and report rotation counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args[0], shuffle)
		},
	}
	cmd.Flags().BoolVar(&shuffle, "shuffle", true, "shuffle the word list before timing (closer to real-world insert order than a sorted file)")
	return cmd
}
