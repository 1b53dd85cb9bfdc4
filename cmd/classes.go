package cmd

import (
	"fmt"
	"strings"

	"github.com/jdwpgo/jdwpgo/jdwp"
	"github.com/spf13/cobra"
)

var classesCmd = &cobra.Command{
	Use:   "classes <host:port> <signature>",
	Short: "Look up loaded classes by JNI signature",
	Long: `Looks up every reference type the target VM has loaded matching the given
JNI signature, e.g. "Ljava/lang/String;" or "Lcom/example/Foo;".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := attach(args[0])
		if err != nil {
			return err
		}
		defer session.Dispose()

		signature := args[1]
		classes, err := session.ClassesBySignature(signature)
		if err != nil {
			return fmt.Errorf("query classes by signature %q: %w", signature, err)
		}

		if len(classes) == 0 {
			fmt.Printf("no loaded classes match %q\n", signature)
			return nil
		}

		for _, c := range classes {
			fmt.Printf("%s  type=%s  status=%s\n", signature, formatTypeTag(c.Type.TypeTag), formatClassStatus(c.Status))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func formatTypeTag(t jdwp.TypeTag) string {
	switch t {
	case jdwp.TypeTagClass:
		return "class"
	case jdwp.TypeTagInterface:
		return "interface"
	case jdwp.TypeTagArray:
		return "array"
	default:
		return fmt.Sprintf("tag(%d)", t)
	}
}

func formatClassStatus(status jdwp.ClassStatus) string {
	var flags []string
	if status&jdwp.ClassVerified != 0 {
		flags = append(flags, "verified")
	}
	if status&jdwp.ClassPrepared != 0 {
		flags = append(flags, "prepared")
	}
	if status&jdwp.ClassInitialized != 0 {
		flags = append(flags, "initialized")
	}
	if status&jdwp.ClassError != 0 {
		flags = append(flags, "error")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, "|")
}
