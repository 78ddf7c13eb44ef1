package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/twystd/flight-deals/deals"
)

// Search window, in days from tomorrow.
const window = 180

type offer struct {
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IATACode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
		} `json:"segments"`
	} `json:"itineraries"`
}

// FindCheapestFare searches for the cheapest non-stop round trip for one adult between
// origin and destination, departing between tomorrow and 180 days from tomorrow. On any
// failure the returned quote is deals.Unavailable().
func (c *Client) FindCheapestFare(ctx context.Context, origin, destination string) (deals.FareQuote, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return deals.Unavailable(), err
	}

	from := c.now().AddDate(0, 0, 1)
	to := from.AddDate(0, 0, window)

	query := url.Values{
		"originLocationCode":      []string{origin},
		"destinationLocationCode": []string{destination},
		"departureDate":           []string{from.Format("2006-01-02")},
		"returnDate":              []string{to.Format("2006-01-02")},
		"adults":                  []string{"1"},
		"nonStop":                 []string{"true"},
		"currencyCode":            []string{c.currency},
		"max":                     []string{"1"},
	}

	body, err := c.get(ctx, token, offersPath, query)
	if err != nil {
		return deals.Unavailable(), fmt.Errorf("flight search %v-%v failed (%w)", origin, destination, err)
	}

	quote, err := parseOffer(body)
	if err != nil {
		return deals.Unavailable(), err
	}

	level.Debug(c.log).Log("msg", "cheapest fare", "origin", quote.Origin, "destination", quote.Destination, "price", quote.Price)

	return quote, nil
}

// parseOffer extracts the quote from the first (i.e. cheapest) offer. The outbound leg
// gives the origin and departure date, the return leg the destination and return date.
func parseOffer(body []byte) (deals.FareQuote, error) {
	var reply struct {
		Data *[]offer `json:"data"`
	}

	if err := json.Unmarshal(body, &reply); err != nil {
		return deals.Unavailable(), &ParseError{Field: "data"}
	} else if reply.Data == nil {
		return deals.Unavailable(), &ParseError{Field: "data"}
	} else if len(*reply.Data) == 0 {
		return deals.Unavailable(), ErrNoOffers
	}

	first := (*reply.Data)[0]

	if len(first.Itineraries) < 2 {
		return deals.Unavailable(), &ParseError{Field: "itineraries"}
	}

	outbound := first.Itineraries[0].Segments
	inbound := first.Itineraries[1].Segments

	if len(outbound) == 0 || len(inbound) == 0 {
		return deals.Unavailable(), &ParseError{Field: "segments"}
	}

	quote := deals.NewFareQuote(
		first.Price.Total,
		outbound[0].Departure.IATACode,
		inbound[0].Departure.IATACode,
		date(outbound[0].Departure.At),
		date(inbound[0].Departure.At))

	if !quote.Available() {
		return quote, &ParseError{Field: "price/departure"}
	}

	return quote, nil
}

func date(timestamp string) string {
	d, _, _ := strings.Cut(strings.TrimSpace(timestamp), "T")

	return d
}
