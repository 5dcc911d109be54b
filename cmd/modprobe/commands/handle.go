package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-kernel32/kernel32"
)

// handle: print the handle of a mapped module, or of the executable.
func handleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handle [module]",
		Short: "Print the handle of a module already loaded in this process",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name *string
			label := "<executable>"
			if len(args) == 1 {
				name = &args[0]
				label = args[0]
			}

			h, err := kernel32.GetModuleHandleW(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%#x\n", label, uintptr(h))
			return nil
		},
	}
	return cmd
}
