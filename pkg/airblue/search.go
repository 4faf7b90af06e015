package airblue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"airbluectl/pkg/fare"
)

// ErrNoFlights is returned when the site reports no flights for the query.
var ErrNoFlights = errors.New("there are no flights available")

// Fetcher loads the results page for a query.
type Fetcher interface {
	FetchResults(ctx context.Context, q Query) (*Results, error)
}

// SearchResult holds the ranked itineraries of one search.
type SearchResult struct {
	Query       Query
	Itineraries []fare.Itinerary
	Outbound    []fare.Offer
	Return      []fare.Offer

	// ReturnUnavailable is set when a round trip was requested but the
	// return date had no bookable offers, so only one-way itineraries
	// were ranked.
	ReturnUnavailable bool

	// Skipped lists rows that could not be read (*fare.MalformedRowError).
	Skipped []error
}

// Search fetches the results for q, extracts the offers of each leg and
// ranks them cheapest first.
func Search(ctx context.Context, f Fetcher, q Query, opts fare.ExtractOptions) (*SearchResult, error) {
	page, err := f.FetchResults(ctx, q)
	if err != nil {
		return nil, err
	}
	return Rank(page, q, opts)
}

// Rank extracts and ranks the offers of an already fetched results page.
func Rank(page *Results, q Query, opts fare.ExtractOptions) (*SearchResult, error) {
	if page.NoFlights() {
		return nil, ErrNoFlights
	}

	result := &SearchResult{Query: q}

	outbound, err := extractLeg(page, 1, q, opts, result)
	if err != nil {
		return nil, err
	}
	result.Outbound = outbound

	legs := [][]fare.Offer{outbound}
	if q.Return != nil {
		inbound, err := extractLeg(page, 2, q, opts, result)
		if err != nil {
			return nil, err
		}
		result.Return = inbound

		if len(inbound) > 0 && len(outbound) > 0 {
			legs = append(legs, inbound)
		} else {
			result.ReturnUnavailable = true
			slog.Warn("no return offers, ranking outbound only", "date", q.Return.Format(DateLayout))
		}
	}

	itineraries, err := fare.Combine(legs...)
	if err != nil {
		return nil, err
	}
	result.Itineraries = itineraries

	slog.Info("ranked itineraries",
		"outbound", len(result.Outbound),
		"return", len(result.Return),
		"itineraries", len(itineraries),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

func extractLeg(page *Results, leg int, q Query, opts fare.ExtractOptions, result *SearchResult) ([]fare.Offer, error) {
	date := q.Depart
	if leg == 2 {
		date = *q.Return
	}

	trip, ok := page.Trip(leg, date)
	if !ok {
		slog.Debug("trip table not found", "id", TripID(leg, date))
		return nil, nil
	}

	extraction, err := fare.ExtractTrip(trip, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip %s: %w", TripID(leg, date), err)
	}

	for _, skipped := range extraction.Skipped {
		slog.Warn("skipped unreadable row", "trip", TripID(leg, date), "err", skipped)
	}
	result.Skipped = append(result.Skipped, extraction.Skipped...)

	return extraction.Offers, nil
}
