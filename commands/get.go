package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/twystd/flight-deals/config"
	"github.com/twystd/flight-deals/deals"
)

var GetCmd = Get{
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the destinations sheet and stores it to a local TSV file"
}

func (cmd *Get) Command() *cobra.Command {
	c := &cobra.Command{
		Use:     cmd.Name(),
		Short:   cmd.Description(),
		Example: `  flight-deals get --file "deals.tsv"`,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), conf, logger)
		},
	}

	c.Flags().StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-dd HHmmss>.tsv'")

	return c
}

func (cmd *Get) Execute(ctx context.Context, conf config.Config, logger log.Logger) error {
	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	store, err := newStore(ctx, conf, logger)
	if err != nil {
		return err
	}

	destinations, err := store.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("unable to retrieve destinations (%w)", err)
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".flight-deals-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := deals.MakeTSV(tmp, destinations); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	level.Info(logger).Log("msg", "retrieved destinations", "file", cmd.file, "rows", len(destinations))

	return nil
}
