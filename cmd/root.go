package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanekelly/overline-zebar/internal/config"
	"github.com/tanekelly/overline-zebar/internal/output"
	"github.com/tanekelly/overline-zebar/internal/version"
)

// cfg is the active configuration, loaded by the root command before any
// subcommand runs.
var cfg = config.Default

var rootCmd = &cobra.Command{
	Use:   "overline",
	Short: "Resolve display titles for the focused window or workspace",
	Long:  "A status-bar companion that derives a human-readable label from tiling window manager state: window titles with process-based overrides, plus workspace-name inference from the processes running in a workspace.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if path, _ := rootCmd.PersistentFlags().GetString("config"); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
