package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/phex-cli/phex/internal/log"
	"github.com/phex-cli/phex/internal/output"
	"github.com/phex-cli/phex/internal/shellquote"
	"github.com/phex-cli/phex/internal/subst"
)

// renderResult is the JSON shape of a render invocation.
type renderResult struct {
	Template string `json:"template"`
	File     string `json:"file,omitempty"`
	Sequence int    `json:"sequence"`
	Result   string `json:"result"`
	Quoted   string `json:"quoted,omitempty"`
}

func newRenderCmd() *cobra.Command {
	var (
		meta       metaFlags
		seq        int
		quote      bool
		dialect    string
		copyResult bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "render [TEMPLATE] [FILE]",
		Short: "Expand a placeholder template",
		Args:  cobra.MaximumNArgs(2),
		Long: `Expand a placeholder template into a filename.

Without TEMPLATE the configured default template is used. With FILE the
placeholders resolve against that file; a TOML sidecar given with --meta
supplies the full metadata record. Unknown placeholders expand to the
empty string.`,
		Example: `  phex render '$(FILE.NAME)'  IMG_0001.CR2      # Expand against a file
  phex render '$(TITLE^^)_$(SEQUENCE)' -m img.toml   # Metadata from a sidecar
  phex render '$(FILE.NAME)' IMG_0001.CR2 --quote    # Shell-safe result
  phex render --seq 42                               # Default template, sequence 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			template := cfg.Template
			var file string
			if len(args) > 0 {
				template = args[0]
			}
			if len(args) > 1 {
				file = args[1]
			}

			img, err := meta.loadImage(file)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seq") {
				seq = cfg.SequenceStart
			}

			l.Debug("rendering template", "template", template, "seq", seq)

			result := subst.Expand(ctx, template, img, seq, meta.options())

			var quoted string
			if quote {
				d, err := parseDialect(dialect)
				if err != nil {
					return err
				}
				quoted = shellquote.Sanitize(result, d)
			}

			if copyResult {
				text := result
				if quote {
					text = quoted
				}
				if err := clipboard.WriteAll(text); err != nil {
					l.Printf("Warning: copy to clipboard: %v\n", err)
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(renderResult{
					Template: template,
					File:     file,
					Sequence: seq,
					Result:   result,
					Quoted:   quoted,
				})
			}

			if quote {
				out.Println(quoted)
			} else {
				out.Println(result)
			}
			return nil
		},
	}

	meta.register(cmd)
	cmd.Flags().IntVar(&seq, "seq", 1, "Sequence number for $(SEQUENCE)")
	cmd.Flags().BoolVar(&quote, "quote", false, "Sanitize the result for shell use")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Shell dialect for --quote: posix or windows (default: current OS)")
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// parseDialect maps the --dialect flag to a shell dialect.
// Empty picks the dialect of the running OS.
func parseDialect(s string) (shellquote.Dialect, error) {
	switch s {
	case "":
		return shellquote.Current(), nil
	case "posix":
		return shellquote.Posix, nil
	case "windows":
		return shellquote.Windows, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want posix or windows)", s)
	}
}
