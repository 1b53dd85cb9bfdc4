package cmd

import (
	"fmt"

	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/spf13/cobra"
)

var threadsCmd = &cobra.Command{
	Use:   "threads <host:port>",
	Short: "List the target VM's threads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := attach(args[0])
		if err != nil {
			return err
		}
		defer session.Dispose()

		threads, err := session.AllThreads()
		if err != nil {
			return fmt.Errorf("query threads: %w", err)
		}

		for _, t := range threads {
			name, err := session.ThreadName(t)
			if err != nil {
				fmt.Printf("%d  <name unavailable: %v>\n", t, err)
				continue
			}

			status, statusErr := session.ThreadStatusAndSuspend(t)
			if statusErr != nil {
				fmt.Printf("%d  %s  <status unavailable: %v>\n", t, name, statusErr)
				continue
			}

			fmt.Printf("%d  %-20s  %-10s  %s\n", t, name,
				formatThreadStatus(status.ThreadStatus), formatSuspendStatus(status.SuspendStatus))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(threadsCmd)
}

func formatThreadStatus(s jdwp.ThreadStatus) string {
	switch s {
	case jdwp.ThreadZombie:
		return "zombie"
	case jdwp.ThreadRunning:
		return "running"
	case jdwp.ThreadSleeping:
		return "sleeping"
	case jdwp.ThreadMonitor:
		return "monitor"
	case jdwp.ThreadWait:
		return "wait"
	default:
		return fmt.Sprintf("status(%d)", s)
	}
}

func formatSuspendStatus(s jdwp.SuspendStatus) string {
	if s == jdwp.Suspended {
		return "suspended"
	}
	return "running"
}
