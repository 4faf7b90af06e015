package fare

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const twoRowTrip = `
<html><body>
<table id="trip_1_date_2024_05_01">
  <thead><tr><th>Flight</th><th>Economy Standard</th><th>Economy Discount</th></tr></thead>
  <tbody>
    <tr>
      <td class="time">10:00 AM</td>
      <td class="time">1:30 PM</td>
      <td class="family family-ES"><label>PKR 10,000</label></td>
      <td class="family family-ED"><label>PKR 9,000</label></td>
    </tr>
  </tbody>
  <tbody>
    <tr>
      <td class="time">6:15 PM</td>
      <td class="time">8:05 PM</td>
      <td class="family family-ES"><label>PKR 10,000</label></td>
      <td class="family family-ED"><label>PKR 9,000</label></td>
    </tr>
  </tbody>
</table>
</body></html>`

func tripFromHTML(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	trip := doc.Find("table").First()
	require.Equal(t, 1, trip.Length(), "fixture has no table")
	return trip
}

func TestExtractTrip(t *testing.T) {
	extraction, err := ExtractTrip(tripFromHTML(t, twoRowTrip), ExtractOptions{})
	require.NoError(t, err)
	require.Empty(t, extraction.Skipped)
	require.Len(t, extraction.Offers, 4)

	expected := []struct {
		dep   Clock
		cabin Cabin
		price int
	}{
		{Clock{10, 0}, CabinEconomyStandard, 10000},
		{Clock{10, 0}, CabinEconomyDiscount, 9000},
		{Clock{18, 15}, CabinEconomyStandard, 10000},
		{Clock{18, 15}, CabinEconomyDiscount, 9000},
	}
	for i, e := range expected {
		o := extraction.Offers[i]
		require.Equal(t, e.dep, o.Departure(), "offer %d", i)
		require.Equal(t, e.cabin, o.Cabin(), "offer %d", i)
		require.Equal(t, e.price, o.Price(), "offer %d", i)
		require.Equal(t, "PKR", o.Currency(), "offer %d", i)
	}
	require.Equal(t, 3*time.Hour+30*time.Minute, extraction.Offers[0].Duration())
}

func TestExtractTrip_SoldOut(t *testing.T) {
	markup := `<table><tbody><tr>
		<td>7:00 AM</td><td>8:45 AM</td>
		<td class="family family-ES"><span>SOLD OUT</span></td>
		<td class="family family-ED"><label>PKR 8,450</label></td>
	</tr></tbody></table>`

	extraction, err := ExtractTrip(tripFromHTML(t, markup), ExtractOptions{})
	require.NoError(t, err)
	require.Empty(t, extraction.Skipped)
	require.Len(t, extraction.Offers, 1)
	require.Equal(t, CabinEconomyDiscount, extraction.Offers[0].Cabin())
	require.Equal(t, 8450, extraction.Offers[0].Price())
}

func TestExtractTrip_AllSoldOut(t *testing.T) {
	markup := `<table><tbody><tr>
		<td>7:00 AM</td><td>8:45 AM</td>
		<td class="family family-ES">Sold Out</td>
		<td class="family family-ED">Sold Out</td>
	</tr></tbody></table>`

	extraction, err := ExtractTrip(tripFromHTML(t, markup), ExtractOptions{})
	require.NoError(t, err)
	require.Empty(t, extraction.Offers)
	require.Empty(t, extraction.Skipped)
}

const brokenRowTrip = `<table>
<tbody>
  <tr>
    <td>7:00 AM</td>
    <td class="family family-ES"><label>PKR 8,450</label></td>
  </tr>
  <tr>
    <td>9:00 AM</td><td>10:50 AM</td>
    <td class="family family-ES"><label>PKR 11,200</label></td>
  </tr>
</tbody>
<tbody>
  <tr>
    <td>1:00 PM</td><td>2:50 PM</td>
    <td class="family family-ES"><label>PKR 11,200</label></td>
    <td class="family family-ED"><label>no fare</label></td>
  </tr>
</tbody>
</table>`

func TestExtractTrip_SkipsMalformedRows(t *testing.T) {
	extraction, err := ExtractTrip(tripFromHTML(t, brokenRowTrip), ExtractOptions{})
	require.NoError(t, err)
	require.Len(t, extraction.Offers, 1)
	require.Equal(t, Clock{9, 0}, extraction.Offers[0].Departure())

	require.Len(t, extraction.Skipped, 2)

	var rowErr *MalformedRowError
	require.True(t, errors.As(extraction.Skipped[0], &rowErr))
	require.Equal(t, 0, rowErr.Body)
	require.Equal(t, 0, rowErr.Row)
	require.Contains(t, rowErr.Reason, "expected 2 times")

	require.True(t, errors.As(extraction.Skipped[1], &rowErr))
	require.Equal(t, 1, rowErr.Body)
	require.Equal(t, 0, rowErr.Row)
	require.Contains(t, rowErr.Reason, "1 prices for 2 open fare cells")
}

func TestExtractTrip_Strict(t *testing.T) {
	_, err := ExtractTrip(tripFromHTML(t, brokenRowTrip), ExtractOptions{Strict: true})

	var rowErr *MalformedRowError
	require.True(t, errors.As(err, &rowErr), "got %v", err)
	require.Equal(t, 0, rowErr.Row)
}

func TestExtractTrip_OvernightRow(t *testing.T) {
	markup := `<table><tbody><tr>
		<td>11:40 PM</td><td>1:25 AM</td>
		<td class="family family-ES"><label>PKR 15,000</label></td>
	</tr></tbody></table>`

	extraction, err := ExtractTrip(tripFromHTML(t, markup), ExtractOptions{})
	require.NoError(t, err)
	require.Empty(t, extraction.Offers)
	require.Len(t, extraction.Skipped, 1)

	var offerErr *MalformedOfferError
	require.True(t, errors.As(extraction.Skipped[0], &offerErr))
	require.Equal(t, "arrival", offerErr.Field)

	extraction, err = ExtractTrip(tripFromHTML(t, markup), ExtractOptions{NextDayArrivals: true})
	require.NoError(t, err)
	require.Empty(t, extraction.Skipped)
	require.Len(t, extraction.Offers, 1)
	require.Equal(t, time.Hour+45*time.Minute, extraction.Offers[0].Duration())
}

func TestExtractTrip_IgnoresNonBodyChildren(t *testing.T) {
	markup := `<table>
		<thead><tr><td>10:00 AM</td><td>1:30 PM</td><td class="family family-ES">PKR 1</td></tr></thead>
		<tfoot><tr><td>PKR 5</td></tr></tfoot>
	</table>`

	extraction, err := ExtractTrip(tripFromHTML(t, markup), ExtractOptions{})
	require.NoError(t, err)
	require.Empty(t, extraction.Offers)
	require.Empty(t, extraction.Skipped)
}
