package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/twystd/flight-deals/deals"
)

// ResolveLocationCode looks up the location code for a city. Where the provider returns
// more than one match the first entry is used.
func (c *Client) ResolveLocationCode(ctx context.Context, city string) deals.Resolution {
	level.Debug(c.log).Log("msg", "resolving location code", "city", city)

	token, err := c.bearer(ctx)
	if err != nil {
		level.Warn(c.log).Log("msg", "location lookup skipped", "city", city, "err", err)
		return deals.Unauthorised()
	}

	query := url.Values{
		"keyword": []string{city},
		"max":     []string{"2"},
		"include": []string{"AIRPORTS"},
	}

	body, err := c.get(ctx, token, locationsPath, query)
	if err != nil {
		level.Warn(c.log).Log("msg", "location lookup failed", "city", city, "err", err)

		var terr *TransportError
		if errors.As(err, &terr) && (terr.Status == http.StatusUnauthorized || terr.Status == http.StatusForbidden) {
			return deals.Unauthorised()
		}

		return deals.Unreachable()
	}

	code, err := parseLocation(body)
	if err != nil {
		level.Warn(c.log).Log("msg", "no location code found", "city", city, "err", err)
		return deals.Missing()
	}

	return deals.Found(code)
}

func parseLocation(body []byte) (string, error) {
	var reply struct {
		Data *[]struct {
			IATACode string `json:"iataCode"`
		} `json:"data"`
	}

	if err := json.Unmarshal(body, &reply); err != nil {
		return "", &ParseError{Field: "data"}
	}

	if reply.Data == nil {
		return "", &ParseError{Field: "data"}
	}

	if len(*reply.Data) == 0 {
		return "", errors.New("no matching locations")
	}

	code := strings.TrimSpace((*reply.Data)[0].IATACode)
	if code == "" {
		return "", &ParseError{Field: "data[0].iataCode"}
	}

	return code, nil
}
