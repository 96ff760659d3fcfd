package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/ppl/pkg/check"
	"github.com/vertti/ppl/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// report prints the results and returns an error if any failed.
// The returned error causes Cobra to exit with code 1.
func report(cmd *cobra.Command, results []check.Result, asJSON bool) error {
	w := cmd.OutOrStdout()
	if asJSON {
		if err := output.PrintJSON(w, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			output.PrintResult(w, r)
		}
	}

	for _, r := range results {
		if !r.OK() {
			return ErrCheckFailed
		}
	}
	return nil
}
