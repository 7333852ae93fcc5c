/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/internal/iodb"
	"github.com/gnames/gncode/internal/ioregistry"
	"github.com/gnames/gncode/internal/ioresolve"
	"github.com/gnames/gncode/pkg/config"
	"github.com/gnames/gncode/pkg/gncode"
	"github.com/spf13/cobra"
)

// getResolveCmd returns the resolve command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getResolveCmd() *cobra.Command {
	var (
		input, output, sqlite string
		toDB, noCache         bool
		jobs                  int
	)

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a field species list into taxon codes",
		Long: `Resolve reads a CSV file of raw field-recorded names and
produces a flat table of unique mnemonic taxon codes.

This command:
  1. Normalizes raw names and applies the corrections file
  2. Matches names against the taxonomic registry (cached)
  3. Picks the best registry candidate per name
  4. Assigns unique codes, honoring the overrides file
  5. Writes the output table as CSV, and optionally into a
     SQLite file and the PostgreSQL warehouse

The input file needs a "taxon" column; without a header the first
column is used. Duplicate rows are expected: row counts decide
which taxon keeps a contested short code.

Examples:
  gncode resolve -i survey.csv
  gncode resolve -i survey.csv -o codes.csv --sqlite codes.sqlite
  gncode resolve -i survey.csv --to-db --no-cache`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, resolveFlags{
				input:   input,
				output:  output,
				sqlite:  sqlite,
				toDB:    toDB,
				noCache: noCache,
				jobs:    jobs,
			})
		},
	}

	resolveCmd.Flags().StringVarP(&input, "input", "i", "",
		"CSV file with raw field-recorded names (required)")
	resolveCmd.Flags().StringVarP(&output, "output", "o",
		"taxon-codes.csv", "output CSV file")
	resolveCmd.Flags().StringVar(&sqlite, "sqlite", "",
		"also write the output table into a SQLite file")
	resolveCmd.Flags().BoolVar(&toDB, "to-db", false,
		"also load the output table into PostgreSQL")
	resolveCmd.Flags().BoolVar(&noCache, "no-cache", false,
		"bypass the registry response cache")
	resolveCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"number of concurrent registry and parser workers")
	_ = resolveCmd.MarkFlagRequired("input")

	return resolveCmd
}

type resolveFlags struct {
	input, output, sqlite string
	toDB, noCache         bool
	jobs                  int
}

func runResolve(_ *cobra.Command, flags resolveFlags) error {
	ctx := context.Background()

	runOpts := []config.Option{
		config.OptResolveInputPath(flags.input),
		config.OptResolveOutputPath(flags.output),
		config.OptResolveSQLitePath(flags.sqlite),
		config.OptResolveToDB(flags.toDB),
		config.OptResolveNoCache(flags.noCache),
	}
	if flags.jobs > 0 {
		runOpts = append(runOpts, config.OptJobsNumber(flags.jobs))
	}
	cfg.Update(runOpts)

	var op gncode.Operator
	if cfg.Resolve.ToDB {
		op = iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		defer op.Close()

		exists, err := op.TableExists(ctx, "taxon_codes")
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if !exists {
			gn.Warn(`Warning: the taxon_codes table does not exist.
	Run 'gncode create' first to initialize the schema.`)
			return nil
		}
	}

	verifier := ioregistry.New(cfg)
	resolver := ioresolve.New(cfg, verifier, op)

	if err := resolver.Resolve(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}
