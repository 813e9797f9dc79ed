package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daisywait/AntiDeepfake/internal/corpus"
	"github.com/Daisywait/AntiDeepfake/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the corpus layout before building",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg, corpus.ASVspoof2019LA())

			if jsonOut {
				payload := make([]checkResult, 0, len(results))
				for _, result := range results {
					payload = append(payload, checkResult{
						Name:   result.Name,
						Passed: result.Passed,
						Detail: result.Detail,
					})
				}
				if err := writeJSON(cmd, payload); err != nil {
					return err
				}
			} else {
				printCheckResults(cmd, results)
			}

			if !preflight.AllPassed(results) {
				failed := 0
				for _, result := range results {
					if !result.Passed {
						failed++
					}
				}
				return fmt.Errorf("%d of %d preflight checks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit check results as JSON")
	return cmd
}

type checkResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func printCheckResults(cmd *cobra.Command, results []preflight.Result) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		status := "FAIL"
		if result.Passed {
			status = "OK"
		}
		rows = append(rows, []string{result.Name, status, result.Detail})
	}

	if isTerminal(out) {
		fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft}))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%-4s %s: %s\n", row[1], row[0], row[2])
	}
}
