package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/phex-cli/phex/internal/output"
	"github.com/phex-cli/phex/internal/shellquote"
)

// quotedArg pairs an input with its quoted form for JSON output.
type quotedArg struct {
	Input  string `json:"input"`
	Quoted string `json:"quoted"`
}

func newQuoteCmd() *cobra.Command {
	var (
		dialect    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "quote ARG...",
		Short: "Quote strings for shell use",
		Args:  cobra.MinimumNArgs(1),
		Long: `Quote each argument for safe use as a single shell argument.

The POSIX dialect wraps in single quotes, the windows dialect in double
quotes. Already-quoted arguments pass through unchanged. One result is
printed per line.`,
		Example: `  phex quote "Fred's Photos"              # Quote for the current OS shell
  phex quote --dialect windows 'a b'      # Quote for cmd.exe
  phex quote img1.jpg img2.jpg --json     # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			d, err := parseDialect(dialect)
			if err != nil {
				return err
			}

			if jsonOutput {
				quoted := make([]quotedArg, len(args))
				for i, arg := range args {
					quoted[i] = quotedArg{Input: arg, Quoted: shellquote.Sanitize(arg, d)}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(quoted)
			}

			for _, arg := range args {
				out.Println(shellquote.Sanitize(arg, d))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", "", "Shell dialect: posix or windows (default: current OS)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
