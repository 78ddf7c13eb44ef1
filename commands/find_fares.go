package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/twystd/flight-deals/config"
	"github.com/twystd/flight-deals/reconcile"
)

var FindFaresCmd = FindFares{
	origin: "",
	update: false,
}

type FindFares struct {
	origin string
	update bool
}

func (cmd *FindFares) Name() string {
	return "find-fares"
}

func (cmd *FindFares) Description() string {
	return "Finds the cheapest return fare to every destination in the sheet"
}

func (cmd *FindFares) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   cmd.Name(),
		Short: cmd.Description(),
		Long: `Searches for the cheapest non-stop return fare from the origin city to every destination
with an IATA code, departing between tomorrow and six months from now. With --update, a
fare cheaper than the price in the sheet is written back to the sheet.`,
		Example: `  flight-deals find-fares
  flight-deals find-fares --origin JNB --update`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.execute(c.Context(), conf, logger, c.OutOrStdout())
		},
	}

	c.Flags().StringVar(&cmd.origin, "origin", cmd.origin, "Origin city IATA code. Defaults to ORIGIN_CITY_IATA")
	c.Flags().BoolVar(&cmd.update, "update", cmd.update, "Updates the sheet with any cheaper fares")

	return c
}

func (cmd *FindFares) Execute(ctx context.Context, conf config.Config, logger log.Logger) error {
	return cmd.execute(ctx, conf, logger, os.Stdout)
}

func (cmd *FindFares) execute(ctx context.Context, conf config.Config, logger log.Logger, w io.Writer) error {
	origin := strings.ToUpper(strings.TrimSpace(cmd.origin))
	if origin == "" {
		origin = conf.Amadeus.Origin
	}

	if origin == "" {
		return fmt.Errorf("--origin is a required option")
	}

	store, err := newStore(ctx, conf, logger)
	if err != nil {
		return err
	}

	airfares := newAirfares(ctx, conf, logger)

	r := reconcile.Reconciler{
		Store: store,
		Pacer: reconcile.NewPacer(conf.Delay),
		Log:   logger,
	}

	level.Debug(logger).Log("msg", "finding fares", "origin", origin, "currency", conf.Amadeus.Currency, "update", cmd.update)

	quotes, err := r.FindFares(ctx, airfares, origin, cmd.update)
	if err != nil {
		return fmt.Errorf("unable to retrieve destinations (%w)", err)
	}

	return report(w, quotes)
}

func report(w io.Writer, quotes []reconcile.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "CITY\tPRICE\tFROM\tTO\tOUT\tBACK")
	for _, q := range quotes {
		f := q.Fare
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\n", q.Destination.City, f.Price, f.Origin, f.Destination, f.OutDate, f.ReturnDate)
	}

	return tw.Flush()
}
