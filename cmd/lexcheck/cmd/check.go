package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexcheck/pkg/pattern"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	c := &cobra.Command{
		Use:   "check <validator> <text>...",
		Short: "Check one or more inputs against a validator",
		Example: `  lexcheck check hex_color '#FFF' '#FFFF'
  lexcheck check -q us_phone 123-456-7890 && echo ok`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := pattern.ParseName(args[0])
			if err != nil {
				return usageError(err)
			}
			fn, _ := pattern.Lookup(name)

			allValid := true
			for _, text := range args[1:] {
				valid := fn(text)
				allValid = allValid && valid
				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", verdict(valid), text)
				}
			}

			if !allValid {
				return &ExitError{Code: ExitInvalid}
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, report through the exit status only")
	return c
}

func verdict(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
