package cmd

import (
	"fmt"
	"time"

	trie "github.com/sarthakjha889/go-wordfreq-trie"
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/cmd/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type FuzzyOptions struct {
	InputFlags InputFlags
	ConfigPath string
	Query      string
	Distance   int
	MaxDepth   int
	MaxVisits  int
	Raw        bool
	Debug      bool
}

func NewFuzzyOptions() *FuzzyOptions {
	return &FuzzyOptions{}
}

func NewFuzzyCmd(o *FuzzyOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzzy",
		Short: "Print indexed words similar to a query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := o.ApplyConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return o.Run(ui.NewTTY(o.Debug))
		},
	}
	o.InputFlags.Set(cmd)
	cmd.Flags().StringVarP(&o.Query, "query", "q", "", "Word to look up (normalised like indexed words)")
	cmd.Flags().IntVarP(&o.Distance, "distance", "d", 1, "Maximum distance budget")
	cmd.Flags().IntVar(&o.MaxDepth, "max-depth", trie.DefaultMaxDepth, "Give up when the index is deeper than this (0 for no limit)")
	cmd.Flags().IntVar(&o.MaxVisits, "max-visits", trie.DefaultMaxVisits, "Give up after visiting this many nodes (0 for no limit)")
	cmd.Flags().BoolVar(&o.Raw, "raw", false, "Print every candidate in search order, including repeats")
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "TOML file with defaults for distance, max_depth and max_visits")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

// ApplyConfig copies values from the config file into options whose flags
// were not set explicitly.
func (o *FuzzyOptions) ApplyConfig(flags *pflag.FlagSet) error {
	if o.ConfigPath == "" {
		return nil
	}

	config, err := NewConfigFromFile(o.ConfigPath)
	if err != nil {
		return err
	}

	if config.Distance != nil && !flags.Changed("distance") {
		o.Distance = *config.Distance
	}
	if config.MaxDepth != nil && !flags.Changed("max-depth") {
		o.MaxDepth = *config.MaxDepth
	}
	if config.MaxVisits != nil && !flags.Changed("max-visits") {
		o.MaxVisits = *config.MaxVisits
	}

	return nil
}

func (o *FuzzyOptions) Run(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	if o.Distance < 0 {
		ui.Warnf("Warning: negative distance %d matches nothing\n", o.Distance)
	}

	index := trie.New().WithMaxDepth(o.MaxDepth).WithMaxVisits(o.MaxVisits)

	err := o.InputFlags.Index(index, ui)
	if err != nil {
		return err
	}

	query := trie.Normalise(o.Query)
	if query != o.Query {
		ui.Debugf("query '%s' normalised to '%s'\n", o.Query, query)
	}

	var results []string
	if o.Raw {
		results, err = index.FuzzyCandidates(query, o.Distance)
	} else {
		results, err = index.FuzzySearch(query, o.Distance)
	}
	if err != nil {
		return fmt.Errorf("Searching for '%s': %w", query, err)
	}

	for _, result := range results {
		ui.Printf("%s\n", result)
	}

	return nil
}
