package cmd

import (
	"fmt"

	"github.com/jdwpgo/jdwpgo/internal/watch"
	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/spf13/cobra"
)

// defaultWatchedEvents is the modest default set of events a thin viewer
// cares about: class lifecycle and thread lifecycle. None of these
// suspend the target VM, since watch is a viewer, not a debugger
// front-end.
var defaultWatchedEvents = []jdwp.EventKind{
	jdwp.EventClassPrepare,
	jdwp.EventClassUnload,
	jdwp.EventThreadStart,
	jdwp.EventThreadDeath,
}

var watchCmd = &cobra.Command{
	Use:   "watch <host:port>",
	Short: "Watch the target VM's event stream live",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := args[0]
		session, err := attach(addr)
		if err != nil {
			return err
		}
		defer session.Dispose()

		for _, kind := range defaultWatchedEvents {
			if _, err := session.SetEventRequest(kind, jdwp.SuspendNone, nil); err != nil {
				return fmt.Errorf("request %v events: %w", kind, err)
			}
		}

		uncaughtException := jdwp.Modifier{Kind: jdwp.ModifierExceptionOnly, ExceptionHasType: false, Caught: false, Uncaught: true}
		if _, err := session.SetEventRequest(jdwp.EventException, jdwp.SuspendNone, []jdwp.Modifier{uncaughtException}); err != nil {
			return fmt.Errorf("request exception events: %w", err)
		}

		return watch.Run(session, addr)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
