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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gncode/internal/ioresolve"
	"github.com/gnames/gncode/pkg/config"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the corrections and overrides files",
		Long: `Check validates the curated data files without running the
resolver.

This command:
  1. Parses corrections.yaml and overrides.yaml
  2. Reports structural errors (empty entries, conflicting
     corrections, two names claiming the same code)
  3. Reports suspicious but workable entries as warnings

Run it after editing the curated files, before a resolve run.

Examples:
  gncode check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}

	return checkCmd
}

func runCheck(_ *cobra.Command, _ []string) error {
	var problems int

	corr, err := ioresolve.LoadCorrections(cfg.HomeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		problems++
	} else {
		gn.Info("Corrections file OK: <em>%s</em>",
			config.CorrectionsFilePath(cfg.HomeDir))
		gn.Info("  %d corrections, %d blocked names, %d warnings",
			len(corr.Corrections), len(corr.Block), len(corr.Warnings))
		for _, w := range corr.Warnings {
			gn.Warn("  %s: %s (%s)", w.Entry, w.Message, w.Suggestion)
		}
	}

	ovr, err := ioresolve.LoadOverrides(cfg.HomeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		problems++
	} else {
		gn.Info("Overrides file OK: <em>%s</em>",
			config.OverridesFilePath(cfg.HomeDir))
		gn.Info("  %d overrides, %d warnings",
			len(ovr.Overrides), len(ovr.Warnings))
		for _, w := range ovr.Warnings {
			gn.Warn("  %s: %s (%s)", w.Entry, w.Message, w.Suggestion)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d curated file(s) failed validation", problems)
	}
	gn.Info("\nAll curated files are valid.")
	return nil
}
