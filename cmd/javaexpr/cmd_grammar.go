package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaexpr/java/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of accepted expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := grammar.Load(); err != nil {
				return err
			}
			_, err := io.WriteString(cmd.OutOrStdout(), grammar.Source())
			return err
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			if _, err := grammar.Check(filename, f, startProduction); err != nil {
				errs := grammar.Errors(err)
				for _, e := range errs {
					fmt.Fprintln(cmd.OutOrStdout(), e)
				}
				return fmt.Errorf("%s: %d grammar errors", filename, len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}
