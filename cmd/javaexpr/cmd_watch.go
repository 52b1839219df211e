package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javaexpr/java/codebase"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>...",
		Short: "Check expression files and re-check them whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd, g, args)
		},
	}
}

func runWatch(ctx context.Context, cmd *cobra.Command, g *globalOptions, paths []string) error {
	out := cmd.OutOrStdout()
	c := codebase.New(".", g.parserOptions()...)
	if err := scanFiles(ctx, c, paths, 0); err != nil {
		return err
	}
	if err := report(out, c, paths); err != nil {
		log.Warning(err.Error())
	}

	w, err := codebase.NewWatcher(c, func(path string, doc *codebase.Document) {
		if doc == nil {
			log.Noticef("%s removed", path)
			return
		}
		if err := report(out, c, []string{path}); err != nil {
			log.Warning(err.Error())
		}
	})
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := w.Add(path); err != nil {
			return err
		}
	}
	log.Noticef("watching %d files", len(paths))
	return w.Run(ctx)
}
