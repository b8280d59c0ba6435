package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexcheck/pkg/batch"
)

func newBatchCmd() *cobra.Command {
	var (
		format      string
		concurrency int
	)

	c := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Check every case listed in a YAML or JSON document",
		Long: `batch reads a document of cases and checks each one:

  cases:
    - validator: postal_code
      text: "12345"
    - validator: hex_color
      text: "#FFF"

The file argument defaults to standard input. Quote values that look like
numbers; an unquoted 12345 is a number and is reported as invalid_argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return usageError(fmt.Errorf("unknown format %q: must be text or json", format))
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return usageError(err)
				}
				defer f.Close()
				in = f
			}

			cases, err := batch.Decode(in)
			if err != nil {
				return usageError(err)
			}

			results, err := batch.Run(cmd.Context(), cases, batch.WithConcurrency(concurrency))
			if err != nil {
				return err
			}

			valid, invalid, failed := batch.Summary(results)
			out := cmd.OutOrStdout()
			if format == "json" {
				err = writeBatchJSON(out, results, valid, invalid, failed)
			} else {
				err = writeBatchText(out, results, valid, invalid, failed)
			}
			if err != nil {
				return err
			}

			if invalid+failed > 0 {
				return &ExitError{Code: ExitInvalid}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	c.Flags().IntVarP(&concurrency, "concurrency", "c", 8, "number of cases checked in parallel")
	return c
}

func writeBatchText(w io.Writer, results []batch.Result, valid, invalid, failed int) error {
	for _, r := range results {
		status := verdict(r.Valid)
		if r.Error != "" {
			status = "error:" + r.Error
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%v\n", status, r.Validator, r.Text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d valid, %d invalid, %d failed\n", valid, invalid, failed)
	return err
}

func writeBatchJSON(w io.Writer, results []batch.Result, valid, invalid, failed int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"results": results,
		"summary": map[string]int{
			"valid":   valid,
			"invalid": invalid,
			"failed":  failed,
		},
	})
}
