package deals

import (
	"encoding/csv"
	"io"
)

// MakeTSV writes the destinations to a tab separated file with a City/IATA Code/Price
// header. Rows without a city are skipped.
func MakeTSV(f io.Writer, destinations []Destination) error {
	header := []string{"City", "IATA Code", "Price"}

	records := [][]string{}
	for _, d := range destinations {
		if clean(d.City) == "" {
			continue
		}

		records = append(records, []string{clean(d.City), clean(d.IATACode), clean(d.Price)})
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
