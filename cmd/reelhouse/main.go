package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(cmd, os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// reportError writes err to w, as a JSON object when --json was given.
func reportError(root *cobra.Command, w io.Writer, err error) {
	if asJSON, _ := root.PersistentFlags().GetBool("json"); asJSON {
		enc := json.NewEncoder(w)
		_ = enc.Encode(map[string]string{
			"error":      err.Error(),
			"error_kind": failureKind(err),
		})
		return
	}
	fmt.Fprintln(w, "error:", err)
}
