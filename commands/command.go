package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/twystd/flight-deals/amadeus"
	"github.com/twystd/flight-deals/config"
	"github.com/twystd/flight-deals/gsheets"
	"github.com/twystd/flight-deals/reconcile"
	"github.com/twystd/flight-deals/sheety"
)

const APP = "flight-deals"

type Options struct {
	Debug bool
}

// newLogger returns a logfmt logger on stderr, tagged with a per-run ID and filtered
// to the configured level. --debug overrides LOG_LEVEL.
func newLogger(lvl string, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "run", uuid.NewString())

	return level.NewFilter(logger, allow(lvl, debug))
}

func allow(lvl string, debug bool) level.Option {
	if debug {
		return level.AllowDebug()
	}

	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	default:
		return level.AllowInfo()
	}
}

func newStore(ctx context.Context, conf config.Config, logger log.Logger) (reconcile.Store, error) {
	switch conf.Store {
	case config.StoreSheety, "":
		if strings.TrimSpace(conf.Sheety.URL) == "" {
			return nil, fmt.Errorf("SHEETY_URL is a required setting")
		}

		return sheety.NewClient(ctx, sheety.Config{URL: conf.Sheety.URL, Token: conf.Sheety.Token}, logger), nil

	case config.StoreGoogle:
		if strings.TrimSpace(conf.Google.URL) == "" {
			return nil, fmt.Errorf("GOOGLE_SHEET_URL is a required setting")
		}

		store, err := gsheets.NewStore(ctx, gsheets.Config{
			Credentials: conf.Google.Credentials,
			Tokens:      conf.Google.Tokens,
			URL:         conf.Google.URL,
			Range:       conf.Google.Range,
		}, logger)

		if err != nil {
			return nil, err
		}

		return store, nil

	default:
		return nil, fmt.Errorf("unknown store '%v' - expected '%v' or '%v'", conf.Store, config.StoreSheety, config.StoreGoogle)
	}
}

func newAirfares(ctx context.Context, conf config.Config, logger log.Logger) *amadeus.Client {
	return amadeus.NewClient(ctx, amadeus.Config{
		BaseURL:      conf.Amadeus.URL,
		ClientID:     conf.Amadeus.ClientID,
		ClientSecret: conf.Amadeus.ClientSecret,
		Currency:     conf.Amadeus.Currency,
	}, logger)
}
