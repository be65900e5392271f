package cmd

import (
	"fmt"
	"io"
	"os"

	trie "github.com/sarthakjha889/go-wordfreq-trie"
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/cmd/ui"
	"github.com/spf13/cobra"
)

type InputFlags struct {
	Files []string

	stdin io.Reader
}

func (s *InputFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.Files, "file", "f", nil, "File to index (ie local path, -) (can be specified multiple times)")
}

// Index inserts the tokens of every input file into t.
func (s *InputFlags) Index(t *trie.Trie, ui ui.UI) error {
	if len(s.Files) == 0 {
		return fmt.Errorf("Expected at least one file (-f)")
	}

	for _, path := range s.Files {
		n, err := s.indexFile(t, path)
		if err != nil {
			return err
		}
		ui.Debugf("indexed %d tokens from %s\n", n, path)
	}
	ui.Debugf("index: %d distinct words, %d nodes\n", t.Len(), t.NodeCount())

	return nil
}

func (s *InputFlags) indexFile(t *trie.Trie, path string) (int, error) {
	if path == "-" {
		stdin := s.stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		n, err := t.InsertFrom(stdin)
		if err != nil {
			return 0, fmt.Errorf("Reading stdin: %w", err)
		}
		return n, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("Opening file '%s': %w", path, err)
	}
	defer file.Close()

	n, err := t.InsertFrom(file)
	if err != nil {
		return 0, fmt.Errorf("Reading file '%s': %w", path, err)
	}
	return n, nil
}
