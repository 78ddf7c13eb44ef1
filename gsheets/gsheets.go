// Package gsheets implements the destinations store on a Google Sheets worksheet.
package gsheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/twystd/flight-deals/deals"
)

type Config struct {
	Credentials string
	Tokens      string
	URL         string
	Range       string
}

// Store reads and updates a destinations worksheet. The ID of each destination is its
// row number in the worksheet.
type Store struct {
	google      *sheets.Service
	spreadsheet string
	area        area
	columns     map[string]int
	log         log.Logger
}

type area struct {
	sheet string
	left  int
	top   int
	text  string
}

func NewStore(ctx context.Context, conf Config, logger log.Logger) (*Store, error) {
	spreadsheet, err := spreadsheetID(conf.URL)
	if err != nil {
		return nil, err
	}

	client, err := authorize(ctx, conf.Credentials, conf.Tokens)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return newStore(google, spreadsheet, conf.Range, logger)
}

func newStore(google *sheets.Service, spreadsheet string, rng string, logger log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	a, err := parseRange(rng)
	if err != nil {
		return nil, err
	}

	return &Store{
		google:      google,
		spreadsheet: spreadsheet,
		area:        a,
		log:         log.With(logger, "store", "google-sheets"),
	}, nil
}

// FetchAll retrieves the destinations from the worksheet range. The first row of the
// range is the header.
func (s *Store) FetchAll(ctx context.Context) ([]deals.Destination, error) {
	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet, s.area.text).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	table, err := deals.MakeTable(response.Values, s.area.top)
	if err != nil {
		return nil, err
	}

	s.columns = table.Columns

	level.Debug(s.log).Log("msg", "retrieved destinations", "range", s.area.text, "rows", len(table.Rows))

	return table.Rows, nil
}

// UpdateField writes a single cell, leaving the rest of the row unchanged.
func (s *Store) UpdateField(ctx context.Context, id int, field, value string) error {
	if s.columns == nil {
		if _, err := s.FetchAll(ctx); err != nil {
			return err
		}
	}

	ix, ok := s.columns[field]
	if !ok {
		return fmt.Errorf("no '%v' column in worksheet %v", field, s.area.sheet)
	}

	if id <= s.area.top {
		return fmt.Errorf("invalid row %v", id)
	}

	cell := fmt.Sprintf("%v!%v%v", s.area.sheet, column(s.area.left+ix), id)
	rq := sheets.ValueRange{
		Range:  cell,
		Values: [][]interface{}{{value}},
	}

	if _, err := s.google.Spreadsheets.Values.Update(s.spreadsheet, cell, &rq).ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("error updating %v (%w)", cell, err)
	}

	return nil
}

func spreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func parseRange(rng string) (area, error) {
	match := regexp.MustCompile(`^(.+?)!([a-zA-Z]+)([0-9]+)(?::[a-zA-Z]+[0-9]*)?$`).FindStringSubmatch(strings.TrimSpace(rng))
	if len(match) < 4 {
		return area{}, fmt.Errorf("invalid range '%s' - expected something like 'Prices!A1:C'", rng)
	}

	top, err := strconv.Atoi(match[3])
	if err != nil || top < 1 {
		return area{}, fmt.Errorf("invalid range '%s' - invalid start row", rng)
	}

	return area{
		sheet: match[1],
		left:  index(match[2]),
		top:   top,
		text:  strings.TrimSpace(rng),
	}, nil
}

// index converts a column name (A, B, ..., Z, AA, AB, ...) to a 0-based column index.
func index(col string) int {
	ix := 0
	for _, ch := range strings.ToUpper(col) {
		ix = ix*26 + int(ch-'A') + 1
	}

	return ix - 1
}

// column is the inverse of index.
func column(ix int) string {
	name := ""
	for n := ix + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}

	return name
}
