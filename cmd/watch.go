package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanekelly/overline-zebar/internal/ipc"
	"github.com/tanekelly/overline-zebar/internal/model"
	"github.com/tanekelly/overline-zebar/internal/output"
	"github.com/tanekelly/overline-zebar/internal/title"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream resolved titles as the window manager focus changes",
	Long: `Connect to the window manager's IPC socket, subscribe to focus change events, and emit one resolved title per event as JSONL to stdout.

The current focus state is resolved and emitted once on connect. Output is always JSONL regardless of the --format flag. The connection is retried with a fixed delay when the window manager goes away.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("port", 0, "Window manager IPC port (default from config)")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Int("retry", 5, "Seconds to wait before reconnecting after a connection error")
}

func runWatch(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	durationSec, _ := cmd.Flags().GetInt("duration")
	retrySec, _ := cmd.Flags().GetInt("retry")

	if port == 0 {
		port = cfg.Port
	}
	url := fmt.Sprintf("ws://localhost:%d", port)

	resolver, err := newResolver()
	if err != nil {
		return err
	}

	var deadline time.Time
	if durationSec > 0 {
		deadline = time.Now().Add(time.Duration(durationSec) * time.Second)
	}

	for {
		err := watchOnce(url, resolver, deadline)
		if err == nil {
			return nil
		}
		log.Printf("watch: %v, reconnecting in %ds", err, retrySec)
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil
		}
		time.Sleep(time.Duration(retrySec) * time.Second)
	}
}

// watchOnce runs one connection lifetime: resolve the current state, then
// follow focus events until the deadline passes or the connection drops.
// A nil return means the deadline was reached.
func watchOnce(url string, resolver *title.Resolver, deadline time.Time) error {
	client, err := ipc.Dial(url)
	if err != nil {
		return err
	}
	defer client.Close()

	// The read deadline keeps a quiet connection from outliving
	// --duration while blocked waiting for the next event.
	if !deadline.IsZero() {
		if err := client.SetReadDeadline(deadline); err != nil {
			return err
		}
	}

	snap, err := client.QueryFocused()
	if err != nil {
		return err
	}
	emitResolved(resolver, snap)

	if err := client.SubscribeFocus(); err != nil {
		return err
	}

	for {
		snap, err := client.NextEvent()
		if err != nil {
			if !deadline.IsZero() && time.Now().After(deadline) {
				return nil
			}
			return err
		}
		emitResolved(resolver, snap)
	}
}

// emitResolved prints one JSONL line for a snapshot. Resolution itself
// never fails; an unresolvable snapshot emits ok: false.
func emitResolved(resolver *title.Resolver, snap model.FocusSnapshot) {
	result := output.ResolveResult{}
	result.Title, result.OK = resolver.ResolveTitle(snap)
	result.Process, _ = resolver.ResolveProcessName(snap)
	output.PrintJSON(result)
}
