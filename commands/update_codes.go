package commands

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/twystd/flight-deals/config"
	"github.com/twystd/flight-deals/reconcile"
)

var UpdateCodesCmd = UpdateCodes{
	dryrun: false,
}

type UpdateCodes struct {
	dryrun bool
}

func (cmd *UpdateCodes) Name() string {
	return "update-codes"
}

func (cmd *UpdateCodes) Description() string {
	return "Fills in the missing IATA codes in the destinations sheet"
}

func (cmd *UpdateCodes) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   cmd.Name(),
		Short: cmd.Description(),
		Long: `Looks up the IATA city code for every destination with a blank, 'TESTING' or 'ERROR'
code and writes it back to the sheet. Destinations without a match are marked 'N/A'
and lookups that fail are marked 'ERROR' so that they are retried on the next run.`,
		Example: `  API_KEY=... API_SECRET=... flight-deals update-codes
  API_KEY=... API_SECRET=... flight-deals --debug update-codes --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), conf, logger)
		},
	}

	c.Flags().BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Resolves the missing codes without updating the sheet")

	return c
}

func (cmd *UpdateCodes) Execute(ctx context.Context, conf config.Config, logger log.Logger) error {
	store, err := newStore(ctx, conf, logger)
	if err != nil {
		return err
	}

	airfares := newAirfares(ctx, conf, logger)

	r := reconcile.Reconciler{
		Store:  store,
		Pacer:  reconcile.NewPacer(conf.Delay),
		DryRun: cmd.dryrun,
		Log:    logger,
	}

	level.Debug(logger).Log("msg", "updating IATA codes", "store", conf.Store, "token", airfares.State(), "dry-run", cmd.dryrun)

	if _, err := r.UpdateCodes(ctx, airfares); err != nil {
		return fmt.Errorf("unable to retrieve destinations (%w)", err)
	}

	return nil
}
