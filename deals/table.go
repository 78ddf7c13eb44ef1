package deals

import (
	"fmt"
	"strings"
)

// Table is a destinations worksheet parsed from the raw cell values. Columns maps the
// field names (city, iataCode, price) to the 0-based column offsets in the sheet.
type Table struct {
	Columns map[string]int
	Rows    []Destination
}

var aliases = map[string]string{
	"city":        FieldCity,
	"iatacode":    FieldIATACode,
	"iata":        FieldIATACode,
	"price":       FieldPrice,
	"lowestprice": FieldPrice,
}

// MakeTable builds the destinations table from worksheet values. The first row is the
// header and 'top' is the sheet row number of the header, so that each destination ID
// is the row number in the worksheet.
func MakeTable(rows [][]interface{}, top int) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("Empty sheet")
	}

	// .. build index
	index := map[string]int{}
	for i, v := range rows[0] {
		k, ok := aliases[normalise(cell(v))]
		if !ok {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("Duplicate column name '%v'", v)
		}

		index[k] = i
	}

	if len(index) == 0 {
		return nil, fmt.Errorf("Missing/invalid header row")
	}

	if _, ok := index[FieldCity]; !ok {
		return nil, fmt.Errorf("Missing 'city' column")
	}

	if _, ok := index[FieldIATACode]; !ok {
		return nil, fmt.Errorf("Missing 'IATA code' column")
	}

	// ... records
	destinations := []Destination{}
	for i, row := range rows[1:] {
		city := lookup(row, index, FieldCity)
		if city == "" {
			continue
		}

		destinations = append(destinations, Destination{
			ID:       top + 1 + i,
			City:     city,
			IATACode: lookup(row, index, FieldIATACode),
			Price:    lookup(row, index, FieldPrice),
		})
	}

	return &Table{
		Columns: index,
		Rows:    destinations,
	}, nil
}

func lookup(row []interface{}, index map[string]int, field string) string {
	if ix, ok := index[field]; ok && ix < len(row) {
		return clean(cell(row[ix]))
	}

	return ""
}

func cell(v interface{}) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf("%v", v)
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
