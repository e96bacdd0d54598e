package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/phex-cli/phex/internal/config"
	"github.com/phex-cli/phex/internal/log"
	"github.com/phex-cli/phex/internal/output"
)

// runCmd executes a command in-process with a quiet logger and captures
// the printer output.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cfg = config.Default()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &buf)

	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}
