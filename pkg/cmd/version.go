package cmd

import (
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/cmd/ui"
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(false)) },
	}
	return cmd
}

func (o *VersionOptions) Run(ui ui.UI) error {
	ui.Printf("wordfreq version %s\n", version.Version)

	return nil
}
