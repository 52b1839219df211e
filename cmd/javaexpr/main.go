package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javaexpr/java/parser"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("javaexpr")

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose     int
	sourceLevel string
}

func (g *globalOptions) parserOptions() []parser.Option {
	return []parser.Option{parser.WithSourceLevel(g.sourceLevel)}
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "javaexpr",
		Short:         "Parse and check Java primary expressions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(g.verbose, nil)
			if _, err := parser.NewGrammar(g.parserOptions()...); err != nil {
				return err
			}
			log.Debugf("source level %s", g.sourceLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&g.sourceLevel, "source", parser.DefaultSourceLevel, "Java source level, e.g. 8 or 1.8")

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newLSPCmd(g))
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
		os.Exit(1)
	}
}
