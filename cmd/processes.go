package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tanekelly/overline-zebar/internal/model"
	"github.com/tanekelly/overline-zebar/internal/output"
)

var processesCmd = &cobra.Command{
	Use:   "processes",
	Short: "List the applications running in the focused workspace",
	Long: `Read a focus snapshot or workspace tree as JSON from stdin or --file and print the application titles and process names found in the workspace, in tree encounter order and without deduplication.

With --flat, every container in the workspace tree is printed with a path breadcrumb instead.`,
	RunE: runProcesses,
}

func init() {
	rootCmd.AddCommand(processesCmd)
	processesCmd.Flags().String("file", "", "Read the snapshot from this file instead of stdin")
	processesCmd.Flags().Bool("flat", false, "Print every container with its tree path")
}

func runProcesses(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	snap, err := readSnapshot(file)
	if err != nil {
		return err
	}
	if snap.Workspace == nil {
		return fmt.Errorf("input contains no workspace")
	}

	if flat, _ := cmd.Flags().GetBool("flat"); flat {
		return output.Print(output.ProcessesFlatResult{
			Workspace:  snap.Workspace.Name,
			Containers: model.FlattenContainers(snap.Workspace.Children),
		})
	}

	apps, processes := model.WorkspaceProcesses(snap.Workspace)
	return output.Print(output.ProcessesResult{
		Workspace: snap.Workspace.Name,
		Apps:      apps,
		Processes: processes,
	})
}
