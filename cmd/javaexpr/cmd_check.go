package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/javaexpr/java/codebase"
	"github.com/dhamidi/javaexpr/java/parser"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse every line of the given expression files and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := codebase.New(".", g.parserOptions()...)
			if err := scanFiles(cmd.Context(), c, args, jobs); err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), c, args)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files to parse concurrently")

	return cmd
}

// scanFiles parses paths into c with at most jobs files in flight.
func scanFiles(ctx context.Context, c *codebase.Codebase, paths []string, jobs int) error {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := c.ScanFile(path)
			if err != nil {
				return fmt.Errorf("check %s: %w", path, err)
			}
			log.Debugf("%s: %d expressions", path, len(doc.Results))
			return nil
		})
	}
	return g.Wait()
}

// report prints the failures of each path in argument order and returns an
// error when any line failed.
func report(w io.Writer, c *codebase.Codebase, paths []string) error {
	total, failed := 0, 0
	for _, path := range paths {
		doc := c.GetFile(path)
		if doc == nil {
			continue
		}
		total += len(doc.Results)
		for _, r := range doc.Errors() {
			failed++
			fmt.Fprintln(w, describeFailure(path, r))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to parse", failed, total)
	}
	log.Infof("%d expressions ok", total)
	return nil
}

func describeFailure(path string, r codebase.Result) string {
	var perr *parser.Error
	if errors.As(r.Err, &perr) {
		return perr.Error()
	}
	return fmt.Sprintf("%s:%d: %s", path, r.Line, r.Err)
}
