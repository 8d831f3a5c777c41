// Package cli wires the cobra command tree for the kotoba CLI.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/morisaki/kotoba/dictionary"
	"github.com/morisaki/kotoba/tokenizer"
)

// NewRootCommand builds the kotoba root command. logger is passed in
// rather than constructed here so main retains control of its lifecycle
// (Sync on exit).
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	var (
		dictFiles  []string
		matrixFile string
	)

	root := &cobra.Command{
		Use:   "kotoba [input]",
		Short: "Segment Japanese text into dictionary terms",
		Long: "kotoba loads an IPADIC-format term dictionary and connection matrix, " +
			"then segments the given text (or the first line of stdin, if no argument is given) into " +
			"the minimum-cost sequence of dictionary terms.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, dictFiles, matrixFile, logger)
		},
	}

	root.Flags().StringArrayVar(&dictFiles, "dict", nil, "path to a term dictionary CSV file (repeatable; concatenated in order given)")
	root.Flags().StringVar(&matrixFile, "matrix", "", "path to the connection matrix file")
	_ = root.MarkFlagRequired("dict")
	_ = root.MarkFlagRequired("matrix")

	return root
}

func run(cmd *cobra.Command, args []string, dictFiles []string, matrixFile string, logger *zap.Logger) error {
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("kotoba: read input: %w", err)
	}

	dict, err := dictionary.Load(dictFiles, matrixFile, dictionary.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("kotoba: load dictionary: %w", err)
	}
	logger.Info("dictionary loaded", zap.Int("terms", dict.TermCount()))

	tokens, err := tokenizer.Tokenize(dict, input)
	if err != nil {
		return fmt.Errorf("kotoba: tokenize: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%s\t%s\t%s\n", tok.Surface(), tok.POS(), tok.Subdivision())
	}

	return nil
}

// readInput returns args[0] if given, else the first line of stdin with
// its trailing newline trimmed.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
