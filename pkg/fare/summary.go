package fare

import (
	"cmp"
	"slices"
)

// FlightSummary lists the bookable cabins of one scheduled flight.
type FlightSummary struct {
	Departure Clock
	Arrival   Clock
	Offers    []Offer
}

// Cheapest returns the lowest priced cabin of the flight.
func (f FlightSummary) Cheapest() Offer {
	return f.Offers[0]
}

// SummarizeFlights groups offers by flight (departure and arrival time),
// orders flights by departure and the cabins of each flight by price,
// keeping at most maxPerFlight cabins per flight. A non-positive
// maxPerFlight keeps them all.
func SummarizeFlights(offers []Offer, maxPerFlight int) []FlightSummary {
	byFlight := make(map[[2]Clock]*FlightSummary)
	var keys [][2]Clock // first appearance

	for _, o := range offers {
		key := [2]Clock{o.departure, o.arrival}
		if _, ok := byFlight[key]; !ok {
			byFlight[key] = &FlightSummary{Departure: o.departure, Arrival: o.arrival}
			keys = append(keys, key)
		}
		byFlight[key].Offers = append(byFlight[key].Offers, o)
	}

	summaries := make([]FlightSummary, 0, len(keys))
	for _, key := range keys {
		s := *byFlight[key]
		s.Offers = RankSingle(s.Offers)
		if maxPerFlight > 0 && len(s.Offers) > maxPerFlight {
			s.Offers = s.Offers[:maxPerFlight]
		}
		summaries = append(summaries, s)
	}

	slices.SortStableFunc(summaries, func(a, b FlightSummary) int {
		return cmp.Compare(a.Departure.Minutes(), b.Departure.Minutes())
	})
	return summaries
}
