package commands

import (
	"context"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/twystd/flight-deals/config"
)

var (
	options = Options{Debug: false}
	conf    config.Config
	logger  log.Logger = log.NewNopLogger()
)

// Execute parses the command line and runs the selected command. With no command, the
// missing location codes are updated.
func Execute(ctx context.Context, args ...string) error {
	root := &cobra.Command{
		Use:           APP,
		Short:         "Keeps a flight deals sheet up to date with airport codes and the cheapest fares",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf = config.Load()
			logger = newLogger(conf.LogLevel, options.Debug)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return UpdateCodesCmd.Execute(cmd.Context(), conf, logger)
		},
	}

	root.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")

	root.AddCommand(
		UpdateCodesCmd.Command(),
		FindFaresCmd.Command(),
		GetCmd.Command(),
		AuthoriseCmd.Command(),
		VersionCmd.Command(),
	)

	if args != nil {
		root.SetArgs(args)
	}

	return root.ExecuteContext(ctx)
}
