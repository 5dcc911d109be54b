package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-kernel32/kernel32"
)

// errmsg: print the system message text for an error code.
func errmsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errmsg <code>",
		Short: "Print the system message for an error code (decimal or 0x hex)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			msg, err := kernel32.FormatErrorMessage(code)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", code, msg)
			return nil
		},
	}
	return cmd
}

func parseCode(s string) (kernel32.DWORD, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q: %w", s, err)
	}
	return kernel32.DWORD(v), nil
}
