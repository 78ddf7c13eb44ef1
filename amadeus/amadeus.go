// Package amadeus implements the airfare provider client: OAuth2 client credentials
// authentication, city to location code lookups and cheapest fare searches.
package amadeus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultBaseURL = "https://test.api.amadeus.com"

	tokenPath     = "/v1/security/oauth2/token"
	locationsPath = "/v1/reference-data/locations/cities"
	offersPath    = "/v2/shopping/flight-offers"
)

// Config is the immutable provider configuration. Blank credentials leave the client
// permanently unauthenticated.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Currency     string
	HTTP         *http.Client
	Now          func() time.Time
}

type Client struct {
	base     string
	currency string
	http     *http.Client
	now      func() time.Time
	log      log.Logger

	sync.Mutex
	credentials *clientcredentials.Config
	token       *oauth2.Token
}

// NewClient creates a provider client and acquires the initial access token. If the
// credentials are missing or the token cannot be acquired, the client stays in the
// NoToken state and every subsequent call fails without any network traffic.
func NewClient(ctx context.Context, conf Config, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	base := strings.TrimSuffix(conf.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	client := conf.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	now := conf.Now
	if now == nil {
		now = time.Now
	}

	c := Client{
		base:     base,
		currency: conf.Currency,
		http:     client,
		now:      now,
		log:      log.With(logger, "provider", "amadeus"),
	}

	if strings.TrimSpace(conf.ClientID) == "" || strings.TrimSpace(conf.ClientSecret) == "" {
		level.Error(c.log).Log("msg", "API credentials are missing - check API_KEY and API_SECRET", "state", NoToken)
		return &c
	}

	c.credentials = &clientcredentials.Config{
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		TokenURL:     base + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	if err := c.authenticate(ctx); err != nil {
		level.Error(c.log).Log("msg", "unable to acquire access token", "err", err, "state", NoToken)
		c.credentials = nil
	}

	return &c
}

func (c *Client) get(ctx context.Context, token *oauth2.Token, path string, query url.Values) ([]byte, error) {
	uri := fmt.Sprintf("%v%v?%v", c.base, path, query.Encode())

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	token.SetAuthHeader(rq)
	rq.Header.Set("Accept", "application/json")

	response, err := c.http.Do(rq)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	level.Debug(c.log).Log("msg", "response", "path", path, "status", response.StatusCode)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &TransportError{Status: response.StatusCode, Body: string(body)}
	}

	return body, nil
}
