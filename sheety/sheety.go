package sheety

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/oauth2"

	"github.com/twystd/flight-deals/deals"
)

// Config is the immutable Sheety client configuration. URL is the sheet collection
// endpoint (e.g. https://api.sheety.co/<project>/flightDeals/prices) and Object the
// name of the row wrapper in update requests (Sheety uses the singular of the sheet
// name).
type Config struct {
	URL    string
	Object string
	Token  string
	HTTP   *http.Client
}

// Client reads and updates the destinations sheet through the Sheety REST API.
type Client struct {
	url    string
	object string
	http   *http.Client
	log    log.Logger
}

type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sheety: HTTP %v (%v)", e.Status, strings.TrimSpace(e.Body))
}

type row struct {
	ID       value `json:"id"`
	City     value `json:"city"`
	IATACode value `json:"iataCode"`
	Price    value `json:"price"`
}

// value accepts a JSON string, number or null since Sheety renders numeric cells as
// numbers.
type value string

func (v *value) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = value(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = value(n.String())
		return nil
	}

	return fmt.Errorf("invalid cell value %s", string(b))
}

func NewClient(ctx context.Context, conf Config, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	client := conf.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	if conf.Token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, client)
		client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conf.Token}))
	}

	object := conf.Object
	if object == "" {
		object = "price"
	}

	return &Client{
		url:    strings.TrimSuffix(conf.URL, "/"),
		object: object,
		http:   client,
		log:    log.With(logger, "store", "sheety"),
	}
}

// FetchAll retrieves all the rows of the destinations sheet, in sheet order.
func (c *Client) FetchAll(ctx context.Context) ([]deals.Destination, error) {
	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("sheety: unable to retrieve destinations (%w)", err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("sheety: error reading response (%w)", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, &TransportError{Status: response.StatusCode, Body: string(body)}
	}

	var reply map[string]json.RawMessage
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("sheety: invalid response (%w)", err)
	}

	rows := []row{}
	if raw, ok := reply[c.object+"s"]; ok {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("sheety: invalid rows (%w)", err)
		}
	}

	destinations := make([]deals.Destination, 0, len(rows))
	for _, r := range rows {
		id, err := strconv.Atoi(string(r.ID))
		if err != nil {
			level.Warn(c.log).Log("msg", "ignoring row with invalid ID", "id", r.ID)
			continue
		}

		destinations = append(destinations, deals.Destination{
			ID:       id,
			City:     strings.TrimSpace(string(r.City)),
			IATACode: strings.TrimSpace(string(r.IATACode)),
			Price:    strings.TrimSpace(string(r.Price)),
		})
	}

	level.Debug(c.log).Log("msg", "retrieved destinations", "rows", len(destinations))

	return destinations, nil
}

// UpdateField sets a single field of a single row. Only the updated field is sent, so the
// remaining cells of the row are left unchanged.
func (c *Client) UpdateField(ctx context.Context, id int, field, v string) error {
	b, err := json.Marshal(map[string]map[string]string{
		c.object: {field: v},
	})
	if err != nil {
		return err
	}

	uri := fmt.Sprintf("%v/%v", c.url, id)
	rq, err := http.NewRequestWithContext(ctx, http.MethodPut, uri, bytes.NewReader(b))
	if err != nil {
		return err
	}

	rq.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(rq)
	if err != nil {
		return fmt.Errorf("sheety: unable to update row %v (%w)", id, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		return &TransportError{Status: response.StatusCode, Body: string(body)}
	}

	return nil
}
