package cmd

import (
	"time"

	trie "github.com/sarthakjha889/go-wordfreq-trie"
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/cmd/ui"
	"github.com/spf13/cobra"
)

type CountOptions struct {
	InputFlags InputFlags
	Prefix     string
	Debug      bool
}

func NewCountOptions() *CountOptions {
	return &CountOptions{}
}

func NewCountCmd(o *CountOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print how often each word occurs, sorted by word",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(o.Debug)) },
	}
	o.InputFlags.Set(cmd)
	cmd.Flags().StringVar(&o.Prefix, "prefix", "", "Only print words starting with prefix")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *CountOptions) Run(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	index := trie.New()

	err := o.InputFlags.Index(index, ui)
	if err != nil {
		return err
	}

	for _, wc := range index.WordCountsWithPrefix(trie.Normalise(o.Prefix)) {
		ui.Printf("%s: %d\n", wc.Word, wc.Count)
	}

	return nil
}
