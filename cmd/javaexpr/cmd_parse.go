package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaexpr/format"
	"github.com/dhamidi/javaexpr/java/parser"
)

func newParseCmd(g *globalOptions) *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression from the arguments or stdin and dump the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			var input io.Reader = cmd.InOrStdin()
			file := "<stdin>"
			if len(args) > 0 {
				input = strings.NewReader(strings.Join(args, " "))
				file = "<arg>"
			}

			opts := append([]parser.Option{parser.WithFile(file)}, g.parserOptions()...)
			expr, err := parser.ParseExpression(input, opts...).Finish()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputFormat == "tree" && includePositions {
				_, err := io.WriteString(out, format.TreeWithPositions(expr))
				return err
			}
			enc, err := format.NewEncoder(outputFormat, out)
			if err != nil {
				return err
			}
			if err := enc.Encode(expr); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, java, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include source positions in tree output")

	return cmd
}
