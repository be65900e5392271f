package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/sarthakjha889/go-wordfreq-trie/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultWordfreqCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordfreq: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
