package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitInvalid = 1 // at least one input was not valid
	ExitUsage   = 2 // bad arguments, unknown validator, unreadable input
)

// ExitError carries a process exit code out of a command.
// Err is nil when there is nothing to report beyond the code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Err: err}
}

// NewRootCmd builds the lexcheck command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lexcheck",
		Short: "Classify strings against named lexical patterns",
		Long: `lexcheck checks whether strings match simple lexical patterns such as
email addresses, US phone numbers, dates, hex colors and IPv4 addresses.

Every check matches the whole input; there is no partial matching.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCmd(),
		newCheckCmd(),
		newBatchCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}
