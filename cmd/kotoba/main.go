// Command kotoba is a thin CLI driver over the tokenizer package: it
// loads a Dictionary from the flags given, tokenizes one line of input,
// and prints one token per line. Not part of the core contract — a
// supplier/consumer of tokenizer's interfaces, nothing more.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/morisaki/kotoba/cmd/kotoba/internal/cli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "kotoba: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := cli.NewRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
