package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/lexcheck/cmd/lexcheck/cmd"
)

func main() {
	err := cmd.NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "lexcheck:", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, "lexcheck:", err)
	os.Exit(cmd.ExitUsage)
}
