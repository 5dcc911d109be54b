package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amikos-tech/pure-kernel32/dynlib"
)

var (
	verbose     bool
	searchPaths []string
	logger      *zap.Logger

	newLogger = func(verbose bool) (*zap.Logger, error) {
		if verbose {
			return zap.NewDevelopment()
		}
		return zap.NewProduction()
	}
)

// NewRootCmd builds the modprobe command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "modprobe",
		Short:        "Inspect shared libraries through the platform loader",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if logger, err = newLogger(verbose); err != nil {
				return err
			}
			dynlib.SetLogger(logger)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringSliceVar(&searchPaths, "search-path", nil, "directories searched for bare library names (adds to $"+dynlib.SearchPathEnv+")")

	root.AddCommand(loadCmd(), handleCmd(), errmsgCmd())
	return root
}

func Execute() error {
	return execute(NewRootCmd())
}

// execute runs root and flushes the logger whether or not the command failed.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}
