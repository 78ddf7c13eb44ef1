package reconcile

import (
	"context"

	"github.com/go-kit/log/level"

	"github.com/twystd/flight-deals/deals"
)

// Quote pairs a destination with the cheapest fare found for it.
type Quote struct {
	Destination deals.Destination
	Fare        deals.FareQuote
}

// FindFares searches for the cheapest fare from origin to every destination with a
// resolved location code. If update is set, a fare cheaper than the price recorded in the
// sheet replaces it.
func (r *Reconciler) FindFares(ctx context.Context, finder FareFinder, origin string, update bool) ([]Quote, error) {
	logger := r.logger()

	destinations, err := r.Store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	quotes := []Quote{}
	for _, row := range destinations {
		if !row.Resolved() {
			level.Debug(logger).Log("msg", "skipping destination without location code", "id", row.ID, "city", row.City, "code", row.IATACode)
			continue
		}

		if err := r.pace(ctx); err != nil {
			return quotes, err
		}

		fare, err := finder.FindCheapestFare(ctx, origin, row.IATACode)
		if err != nil {
			level.Warn(logger).Log("msg", "no fare found", "city", row.City, "code", row.IATACode, "err", err)
		} else {
			level.Info(logger).Log("msg", "cheapest fare", "city", row.City, "price", fare.Price, "from", fare.Origin, "to", fare.Destination, "out", fare.OutDate, "back", fare.ReturnDate)
		}

		quotes = append(quotes, Quote{Destination: row, Fare: fare})

		if !update || r.DryRun || !fare.CheaperThan(row.Price) {
			continue
		}

		if err := r.Store.UpdateField(ctx, row.ID, deals.FieldPrice, fare.Price); err != nil {
			level.Error(logger).Log("msg", "error updating price", "id", row.ID, "city", row.City, "price", fare.Price, "err", err)
		} else {
			level.Info(logger).Log("msg", "updated price", "id", row.ID, "city", row.City, "price", fare.Price, "was", row.Price)
		}
	}

	return quotes, nil
}
