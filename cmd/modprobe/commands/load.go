package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amikos-tech/pure-kernel32/dynlib"
)

// load: open a library and print the address of each requested symbol.
func loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <library> [symbol...]",
		Short: "Open a shared library and resolve symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []dynlib.Option
			if len(searchPaths) > 0 {
				opts = append(opts, dynlib.WithSearchPaths(searchPaths...))
			}

			lib, err := dynlib.Open(args[0], opts...)
			if err != nil {
				return err
			}
			defer func() {
				if err := lib.Close(); err != nil {
					logger.Warn("close failed", zap.String("path", lib.Path()), zap.Error(err))
				}
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\t%#x\n", lib.Path(), lib.Handle())

			var missing int
			for _, symbol := range args[1:] {
				addr, err := lib.Lookup(symbol)
				if err != nil {
					logger.Debug("lookup failed", zap.String("symbol", symbol), zap.Error(err))
					fmt.Fprintf(out, "%s\tnot found\n", symbol)
					missing++
					continue
				}
				fmt.Fprintf(out, "%s\t%#x\n", symbol, addr)
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d symbols not found", missing, len(args)-1)
			}
			return nil
		},
	}
	return cmd
}
