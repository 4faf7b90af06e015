package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/fare"

	"github.com/stretchr/testify/require"
)

func offer(t *testing.T, dep, arr, price, cabin string) fare.Offer {
	t.Helper()
	o, err := fare.NewOffer(fare.RawOffer{Departure: dep, Arrival: arr, Price: price, Cabin: cabin})
	require.NoError(t, err)
	return o
}

func TestAmount(t *testing.T) {
	require.Equal(t, "PKR 12,500", Amount("PKR", 12500))
	require.Equal(t, "PKR 950", Amount("PKR", 950))
	require.Equal(t, "1,250,000", Amount("", 1250000))
}

func TestDuration(t *testing.T) {
	require.Equal(t, "3h 30m", Duration(3*time.Hour+30*time.Minute))
	require.Equal(t, "0h 05m", Duration(5*time.Minute))
}

func TestItineraries_OneWay(t *testing.T) {
	itineraries, err := fare.Combine([]fare.Offer{
		offer(t, "10:00 AM", "1:30 PM", "PKR 12,500", "family-ES"),
		offer(t, "6:00 PM", "7:55 PM", "PKR 9,000", "family-ED"),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Itineraries(&buf, itineraries, 1)
	out := buf.String()

	require.Contains(t, out, "PKR 9,000")
	require.Contains(t, out, "6:00 PM - 7:55 PM")
	require.Contains(t, out, "Economy Discount")
	require.NotContains(t, out, "PKR 12,500")
}

func TestItineraries_RoundTrip(t *testing.T) {
	itineraries, err := fare.Combine(
		[]fare.Offer{offer(t, "10:00 AM", "1:30 PM", "PKR 12,500", "family-ES")},
		[]fare.Offer{offer(t, "6:00 PM", "7:55 PM", "AED 900", "family-ED")},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	Itineraries(&buf, itineraries, 0)
	out := buf.String()

	require.Contains(t, out, "13,400") // mixed currencies: bare total
	require.NotContains(t, out, "PKR 13,400")
	require.Contains(t, out, "PKR 12,500")
	require.Contains(t, out, "AED 900")
	require.Contains(t, out, "3h 30m")
	require.Contains(t, out, "1h 55m")
}

func TestSchedule(t *testing.T) {
	flights := fare.SummarizeFlights([]fare.Offer{
		offer(t, "10:00 AM", "1:30 PM", "PKR 12,500", "family-ES"),
		offer(t, "10:00 AM", "1:30 PM", "PKR 9,900", "family-ED"),
	}, 0)

	var buf bytes.Buffer
	Schedule(&buf, flights)
	out := buf.String()

	require.Contains(t, out, "Economy Discount: PKR 9,900, Economy Standard: PKR 12,500")
	require.Equal(t, 1, strings.Count(out, "10:00 AM - 1:30 PM"))
}

func TestResult(t *testing.T) {
	q, err := airblue.ParseQuery("KHI", "ISB", "2026-11-10", "2026-11-11")
	require.NoError(t, err)

	outbound := []fare.Offer{
		offer(t, "10:00 AM", "11:55 AM", "PKR 12,500", "family-ES"),
		offer(t, "10:00 AM", "11:55 AM", "PKR 9,000", "family-ED"),
	}
	itineraries, err := fare.Combine(outbound)
	require.NoError(t, err)

	result := &airblue.SearchResult{
		Query:             q,
		Outbound:          outbound,
		Itineraries:       itineraries,
		ReturnUnavailable: true,
		Skipped:           []error{&fare.MalformedRowError{Reason: "expected 2 times, found 1"}},
	}

	var buf bytes.Buffer
	Result(&buf, result, ResultOptions{Limit: 1})
	out := buf.String()

	require.Contains(t, out, "No return flights on 2026-11-11")
	require.Contains(t, out, "1 result rows could not be read")
	require.Contains(t, out, "Cheapest fares KHI → ISB")
	require.Contains(t, out, "Showing 1 of 2 options.")

	buf.Reset()
	Result(&buf, result, ResultOptions{Schedule: true})
	require.Contains(t, buf.String(), "Economy Discount: PKR 9,000, Economy Standard: PKR 12,500")
}

func TestResult_Empty(t *testing.T) {
	q, err := airblue.ParseQuery("KHI", "ISB", "2026-11-10", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	Result(&buf, &airblue.SearchResult{Query: q}, ResultOptions{})
	require.Contains(t, buf.String(), "There are no flights available")
}
