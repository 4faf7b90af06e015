package fare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeFlights(t *testing.T) {
	offers := []Offer{
		mustOffer(t, "6:00 PM", "7:50 PM", "PKR 12,000", "family-ES"),
		mustOffer(t, "6:00 PM", "7:50 PM", "PKR 9,000", "family-ED"),
		mustOffer(t, "7:00 AM", "8:50 AM", "PKR 14,000", "family-ES"),
		mustOffer(t, "7:00 AM", "8:50 AM", "PKR 10,000", "family-ED"),
		mustOffer(t, "7:00 AM", "8:50 AM", "PKR 11,000", "family-XX"),
	}

	summary := SummarizeFlights(offers, 2)
	require.Len(t, summary, 2)

	require.Equal(t, Clock{7, 0}, summary[0].Departure)
	require.Len(t, summary[0].Offers, 2)
	require.Equal(t, 10000, summary[0].Cheapest().Price())
	require.Equal(t, 11000, summary[0].Offers[1].Price())

	require.Equal(t, Clock{18, 0}, summary[1].Departure)
	require.Equal(t, Clock{19, 50}, summary[1].Arrival)
	require.Equal(t, CabinEconomyDiscount, summary[1].Cheapest().Cabin())

	require.Len(t, SummarizeFlights(offers, 0)[0].Offers, 3)
}

func TestSummarizeFlights_Empty(t *testing.T) {
	require.Empty(t, SummarizeFlights(nil, 5))
}
