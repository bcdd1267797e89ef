package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tanekelly/overline-zebar/internal/output"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the display title for the current focus state",
	Long: `Read a window manager focus snapshot as JSON from stdin or --file and print the resolved display title and process name.

The input may be a {focusedContainer, focusedWorkspace} snapshot or a full container tree with the focused node marked hasFocus. When nothing is renderable the result has ok: false and the widget should show a generic glyph.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("file", "", "Read the snapshot from this file instead of stdin")
}

func runResolve(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	snap, err := readSnapshot(file)
	if err != nil {
		return err
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}

	result := output.ResolveResult{}
	result.Title, result.OK = resolver.ResolveTitle(snap)
	result.Process, _ = resolver.ResolveProcessName(snap)
	return output.Print(result)
}
