// Package reconcile implements the batch jobs that bring the destinations sheet up to
// date: filling in missing location codes and recording the cheapest fares.
package reconcile

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/time/rate"

	"github.com/twystd/flight-deals/deals"
)

const DefaultDelay = 1500 * time.Millisecond

type Store interface {
	FetchAll(ctx context.Context) ([]deals.Destination, error)
	UpdateField(ctx context.Context, id int, field, value string) error
}

type Resolver interface {
	ResolveLocationCode(ctx context.Context, city string) deals.Resolution
}

type FareFinder interface {
	FindCheapestFare(ctx context.Context, origin, destination string) (deals.FareQuote, error)
}

// Pacer blocks until the next row may be processed. *rate.Limiter is a Pacer.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a pacer that allows one row per 'delay' interval.
func NewPacer(delay time.Duration) Pacer {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Every(delay), 1)
}

type Reconciler struct {
	Store  Store
	Pacer  Pacer
	DryRun bool
	Log    log.Logger
}

func (r *Reconciler) logger() log.Logger {
	if r.Log == nil {
		return log.NewNopLogger()
	}

	return r.Log
}

func (r *Reconciler) pace(ctx context.Context) error {
	if r.Pacer == nil {
		return nil
	}

	return r.Pacer.Wait(ctx)
}

// UpdateCodes resolves the location code of every destination with a missing code and
// writes it back to the store, one row at a time and in store order. Failures are logged
// and do not stop the batch. Only a failure to retrieve the destinations is returned.
func (r *Reconciler) UpdateCodes(ctx context.Context, resolver Resolver) ([]deals.Destination, error) {
	logger := r.logger()

	destinations, err := r.Store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := 0
	for i := range destinations {
		row := &destinations[i]
		if !row.MissingCode() {
			continue
		}

		if err := r.pace(ctx); err != nil {
			return destinations, err
		}

		level.Info(logger).Log("msg", "updating location code", "id", row.ID, "city", row.City)

		resolution := resolver.ResolveLocationCode(ctx, row.City)
		row.IATACode = resolution.String()

		if r.DryRun {
			level.Info(logger).Log("msg", "dry run - row not updated", "id", row.ID, "city", row.City, "code", row.IATACode)
			continue
		}

		if err := r.Store.UpdateField(ctx, row.ID, deals.FieldIATACode, row.IATACode); err != nil {
			level.Error(logger).Log("msg", "error updating row", "id", row.ID, "city", row.City, "code", row.IATACode, "err", err)
			continue
		}

		updated++
		if resolution.OK() {
			level.Info(logger).Log("msg", "updated row", "id", row.ID, "city", row.City, "code", row.IATACode)
		} else {
			level.Warn(logger).Log("msg", "updated row with unresolved code", "id", row.ID, "city", row.City, "code", row.IATACode, "outcome", resolution.Outcome)
		}
	}

	level.Info(logger).Log("msg", "location codes updated", "rows", len(destinations), "updated", updated)

	return destinations, nil
}
