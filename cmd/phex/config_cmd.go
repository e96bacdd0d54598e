package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phex-cli/phex/internal/config"
	"github.com/phex-cli/phex/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Long: `Manage phex configuration.

Config location: ~/.config/phex/config.toml`,
		Example: `  phex config show    # Show effective config
  phex config init    # Create default config file`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			path, err := config.Path()
			if err != nil {
				path = "(unknown)"
			}
			out.Printf("Config file: %s\n\n", path)
			out.Printf("template: %s\n", cfg.Template)
			out.Printf("sequence_start: %d\n", cfg.SequenceStart)
			if cfg.Overrides.Username != "" {
				out.Printf("overrides.username: %s\n", cfg.Overrides.Username)
			}
			if cfg.Overrides.HomeDir != "" {
				out.Printf("overrides.home_dir: %s\n", cfg.Overrides.HomeDir)
			}
			if cfg.Overrides.PicturesDir != "" {
				out.Printf("overrides.pictures_dir: %s\n", cfg.Overrides.PicturesDir)
			}
			if cfg.Overrides.DesktopDir != "" {
				out.Printf("overrides.desktop_dir: %s\n", cfg.Overrides.DesktopDir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  phex config init       # Create config at ~/.config/phex/config.toml
  phex config init -f    # Overwrite existing config
  phex config init -s    # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := defaultConfigFile()

			if stdout {
				fmt.Print(content)
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}

			fmt.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

// defaultConfigFile returns the default configuration content
func defaultConfigFile() string {
	return `# phex configuration
# Config location: ~/.config/phex/config.toml

# Template used by 'phex render' when none is given on the command line.
# template = "$(EXIF.YEAR)$(EXIF.MONTH)$(EXIF.DAY)_$(SEQUENCE).$(FILE.EXTENSION)"

# First sequence number for $(SEQUENCE).
# sequence_start = 1

# Override values otherwise derived from the environment.
# [overrides]
# username = "fred"
# home_dir = "~"
# pictures_dir = "~/Pictures"
# desktop_dir = "~/Desktop"
`
}
