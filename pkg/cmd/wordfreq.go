package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/version"
	"github.com/spf13/cobra"
)

type WordfreqOptions struct{}

func NewDefaultWordfreqOptions() *WordfreqOptions {
	return &WordfreqOptions{}
}

func NewDefaultWordfreqCmd() *cobra.Command {
	return NewWordfreqCmd(NewDefaultWordfreqOptions())
}

func NewWordfreqCmd(o *WordfreqOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wordfreq",
		Version: version.Version,
		Short:   "wordfreq counts words and finds similar ones",
		Long: `wordfreq counts words and finds similar ones.

Words are lower-cased, stripped of accents and of everything that is not a letter.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewCountCmd(NewCountOptions()))
	cmd.AddCommand(NewFuzzyCmd(NewFuzzyOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
