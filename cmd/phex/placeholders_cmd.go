package main

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phex-cli/phex/internal/format"
	"github.com/phex-cli/phex/internal/log"
	"github.com/phex-cli/phex/internal/output"
	"github.com/phex-cli/phex/internal/subst"
	"github.com/phex-cli/phex/internal/ui"
)

// placeholderDisplay holds one placeholder row for JSON output.
type placeholderDisplay struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Implemented bool   `json:"implemented"`
}

func newPlaceholdersCmd() *cobra.Command {
	var (
		meta        metaFlags
		seq         int
		jsonOutput  bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "placeholders [FILE]",
		Short:   "List placeholders and their values",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		Long: `List every placeholder with its resolved value.

With FILE or --meta the values resolve against that image; otherwise
only the environment-derived placeholders carry values. Use -i to pick
a placeholder interactively with fuzzy filtering.`,
		Example: `  phex placeholders                    # List names and environment values
  phex placeholders IMG_0001.CR2       # Values for a file
  phex placeholders -m img.toml        # Values from a metadata sidecar
  phex placeholders -i                 # Interactive browser
  phex placeholders --json             # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			var file string
			if len(args) > 0 {
				file = args[0]
			}

			img, err := meta.loadImage(file)
			if err != nil {
				return err
			}

			names := subst.Names()
			values := subst.Resolve(img, seq, meta.options())
			l.Debug("resolved placeholders", "count", len(values))

			if interactive {
				if !isatty.IsTerminal(os.Stdout.Fd()) {
					l.Printf("Warning: not a terminal, listing instead\n")
				} else {
					entries := make([]ui.Entry, len(names))
					for i, name := range names {
						entries[i] = ui.Entry{Name: name, Value: values[name]}
					}
					selected, err := ui.Browse(entries)
					if err != nil {
						return err
					}
					if selected != "" {
						out.Printf("$(%s)\n", selected)
					}
					return nil
				}
			}

			if jsonOutput {
				display := make([]placeholderDisplay, len(names))
				for i, name := range names {
					display[i] = placeholderDisplay{
						Name:        name,
						Value:       values[name],
						Description: format.PlaceholderHelp(name),
						Implemented: subst.Implemented(name),
					}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			headers := []string{"NAME", "VALUE", "DESCRIPTION"}
			var rows [][]string
			for _, name := range names {
				rows = append(rows, []string{
					name,
					format.DisplayValue(values[name]),
					format.PlaceholderHelp(name),
				})
			}

			out.Print(format.RenderTable(headers, rows))
			return nil
		},
	}

	meta.register(cmd)
	cmd.Flags().IntVar(&seq, "seq", 1, "Sequence number for $(SEQUENCE)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a placeholder interactively")

	return cmd
}
