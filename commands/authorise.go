package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/twystd/flight-deals/config"
	"github.com/twystd/flight-deals/gsheets"
)

var AuthoriseCmd = Authorise{}

type Authorise struct {
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises flight-deals to access a Google Sheets worksheet"
}

func (cmd *Authorise) Command() *cobra.Command {
	return &cobra.Command{
		Use:     cmd.Name(),
		Aliases: []string{"authorize"},
		Short:   cmd.Description(),
		Long: `Runs the OAuth2 console flow for the Google Sheets store and saves the resulting token
in GOOGLE_TOKENS. Only required when FLIGHT_DEALS_STORE is 'google'.`,
		Example: `  GOOGLE_CREDENTIALS=credentials.json flight-deals authorise`,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), conf, logger)
		},
	}
}

func (cmd *Authorise) Execute(ctx context.Context, conf config.Config, logger log.Logger) error {
	if strings.TrimSpace(conf.Google.Credentials) == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS is a required setting")
	}

	if strings.TrimSpace(conf.Google.Tokens) == "" {
		return fmt.Errorf("GOOGLE_TOKENS is a required setting")
	}

	file, err := gsheets.Authorise(ctx, conf.Google.Credentials, conf.Google.Tokens, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("authorisation failed (%w)", err)
	}

	level.Info(logger).Log("msg", "saved Google Sheets token", "file", file)

	return nil
}
