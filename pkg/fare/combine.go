package fare

import (
	"cmp"
	"slices"
)

// RankSingle returns a copy of offers sorted by price, cheapest first.
// Offers with equal prices keep their original order.
func RankSingle(offers []Offer) []Offer {
	ranked := slices.Clone(offers)
	slices.SortStableFunc(ranked, func(a, b Offer) int {
		return cmp.Compare(a.price, b.price)
	})
	return ranked
}

// Pair is a round trip made of an outbound and a return offer.
type Pair struct {
	Outbound Offer
	Return   Offer
}

// Price is the summed price of both legs.
func (p Pair) Price() int {
	return p.Outbound.price + p.Return.price
}

// Currency is the shared currency of both legs, or "" if they differ.
func (p Pair) Currency() string {
	if p.Outbound.currency != p.Return.currency {
		return ""
	}
	return p.Outbound.currency
}

// RankPairs builds every outbound/return combination and sorts them by
// combined price. Ties keep generation order: outbound order first, then
// return order.
func RankPairs(outbound, inbound []Offer) []Pair {
	pairs := make([]Pair, 0, len(outbound)*len(inbound))
	for _, out := range outbound {
		for _, in := range inbound {
			pairs = append(pairs, Pair{Outbound: out, Return: in})
		}
	}

	slices.SortStableFunc(pairs, func(a, b Pair) int {
		return cmp.Compare(a.Price(), b.Price())
	})
	return pairs
}

// Itinerary is a one-way trip (one leg) or a round trip (two legs).
type Itinerary struct {
	Legs []Offer
}

func (it Itinerary) Outbound() Offer {
	return it.Legs[0]
}

// Return reports the return leg of a round trip.
func (it Itinerary) Return() (Offer, bool) {
	if len(it.Legs) < 2 {
		return Offer{}, false
	}
	return it.Legs[1], true
}

func (it Itinerary) RoundTrip() bool {
	return len(it.Legs) == 2
}

// Price is the summed price of all legs.
func (it Itinerary) Price() int {
	total := 0
	for _, leg := range it.Legs {
		total += leg.price
	}
	return total
}

// Currency is the shared currency of all legs, or "" if they differ.
func (it Itinerary) Currency() string {
	if len(it.Legs) == 0 {
		return ""
	}
	currency := it.Legs[0].currency
	for _, leg := range it.Legs[1:] {
		if leg.currency != currency {
			return ""
		}
	}
	return currency
}

// Combine ranks one leg of offers as one-way itineraries, or two legs as
// round trips. Any other number of legs is an *InvalidArityError.
func Combine(legs ...[]Offer) ([]Itinerary, error) {
	switch len(legs) {
	case 1:
		ranked := RankSingle(legs[0])
		itineraries := make([]Itinerary, len(ranked))
		for i, o := range ranked {
			itineraries[i] = Itinerary{Legs: []Offer{o}}
		}
		return itineraries, nil
	case 2:
		pairs := RankPairs(legs[0], legs[1])
		itineraries := make([]Itinerary, len(pairs))
		for i, p := range pairs {
			itineraries[i] = Itinerary{Legs: []Offer{p.Outbound, p.Return}}
		}
		return itineraries, nil
	default:
		return nil, &InvalidArityError{Got: len(legs)}
	}
}
