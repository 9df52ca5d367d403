package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ember/internal/ir"
	"ember/internal/snapshot"
)

var checkJobs int

func init() {
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "parallel workers (0 = GOMAXPROCS)")
}

type checkResult struct {
	path string
	err  error
}

var checkCmd = &cobra.Command{
	Use:   "check <snapshot>...",
	Short: "Validate procedure snapshots",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs := checkJobs
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		// Per-index slots, no mutex needed.
		results := make([]checkResult, len(args))

		g, gctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(min(jobs, len(args)))
		for i, path := range args {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = checkResult{path: path, err: checkOne(path)}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, res := range results {
			if res.err != nil {
				failed++
				fmt.Fprintf(out, "%s: %v\n", res.path, res.err)
				continue
			}
			fmt.Fprintf(out, "%s: ok\n", res.path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d snapshots failed validation", failed, len(args))
		}
		return nil
	},
}

func checkOne(path string) error {
	proc, err := snapshot.ReadFile(path)
	if err != nil {
		return err
	}
	return ir.Validate(proc)
}
