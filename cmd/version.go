package cmd

import (
	"fmt"

	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version <host:port>",
	Short: "Print the target VM's JDWP and version information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := attach(args[0])
		if err != nil {
			return err
		}
		defer session.Dispose()

		v, err := session.Version()
		if err != nil {
			return fmt.Errorf("query version: %w", err)
		}

		fmt.Printf("JDWP %d.%d\n", v.VersionMajor, v.VersionMinor)
		fmt.Printf("VM:  %s\n", v.VMName)
		fmt.Printf("     %s\n", v.VMVersion)
		fmt.Printf("     %s\n", v.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// attach dials addr and negotiates identifier widths before returning the
// session, so every subsequent command decodes IDs at their real size
// instead of the 8-byte default.
func attach(addr string) (*jdwp.Session, error) {
	session, err := jdwp.Attach(addr)
	if err != nil {
		return nil, fmt.Errorf("attach %s: %w", addr, err)
	}

	sizes, err := session.IDSizes()
	if err != nil {
		session.Dispose()
		return nil, fmt.Errorf("negotiate id sizes: %w", err)
	}
	session.SetIDSizes(sizes)

	return session, nil
}
