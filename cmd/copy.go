package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/tanekelly/overline-zebar/internal/output"
)

// CopyResult is the output of the `copy` command.
type CopyResult struct {
	OK      bool   `yaml:"ok"                json:"ok"`
	Process string `yaml:"process,omitempty" json:"process,omitempty"`
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the focused window's process name to the clipboard",
	Long:  "Read a focus snapshot as JSON from stdin or --file, resolve the focused window's process name, and write it to the system clipboard. Fails when a structural container has focus.",
	RunE:  runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().String("file", "", "Read the snapshot from this file instead of stdin")
}

func runCopy(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	snap, err := readSnapshot(file)
	if err != nil {
		return err
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}

	process, ok := resolver.ResolveProcessName(snap)
	if !ok {
		return fmt.Errorf("no focused window to copy a process name from")
	}
	if err := clipboard.WriteAll(process); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return output.Print(CopyResult{OK: true, Process: process})
}
