package fare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const soldOutMarker = "SOLD OUT"

// ExtractOptions controls how ExtractTrip treats rows it cannot read.
type ExtractOptions struct {
	// Strict aborts the whole trip on the first malformed row. Otherwise the
	// row (or offer) is skipped and recorded in Extraction.Skipped.
	Strict bool

	// NextDayArrivals treats a row whose arrival is earlier than its
	// departure as landing on the following day.
	NextDayArrivals bool
}

// Extraction is the result of reading one trip table.
type Extraction struct {
	Offers  []Offer
	Skipped []error // *MalformedRowError values
}

// ExtractTrip reads every flight row of a trip node (the element holding the
// tbody row groups for one direction) into offers.
func ExtractTrip(trip *goquery.Selection, opts ExtractOptions) (*Extraction, error) {
	result := &Extraction{}
	var abort error

	trip.ChildrenFiltered("tbody").EachWithBreak(func(b int, body *goquery.Selection) bool {
		body.ChildrenFiltered("tr").EachWithBreak(func(r int, row *goquery.Selection) bool {
			offers, errs := extractRow(row, opts)
			result.Offers = append(result.Offers, offers...)

			for _, err := range errs {
				var rowErr *MalformedRowError
				if !errors.As(err, &rowErr) {
					rowErr = &MalformedRowError{Reason: "invalid offer", Err: err}
				}
				rowErr.Body = b
				rowErr.Row = r

				if opts.Strict {
					abort = rowErr
					return false
				}
				result.Skipped = append(result.Skipped, rowErr)
			}
			return true
		})
		return abort == nil
	})

	if abort != nil {
		return nil, abort
	}
	return result, nil
}

// extractRow builds the offers of a single row. A row is one flight; each
// of its fare cells is an alternative cabin for that flight.
func extractRow(row *goquery.Selection, opts ExtractOptions) ([]Offer, []error) {
	var tags []string
	row.Find(".family").Each(func(_ int, cell *goquery.Selection) {
		if strings.Contains(strings.ToUpper(cell.Text()), soldOutMarker) {
			return
		}
		class, _ := cell.Attr("class")
		tags = append(tags, class)
	})

	text := row.Text()
	prices := FindPrices(text)
	if len(prices) == 0 && len(tags) == 0 {
		return nil, nil
	}

	// Prices and open cells are matched by position. Sold-out cells carry
	// no price, so both lists must come out the same length.
	if len(prices) != len(tags) {
		return nil, []error{&MalformedRowError{
			Reason: fmt.Sprintf("found %d prices for %d open fare cells", len(prices), len(tags)),
		}}
	}

	times := FindTimes(text)
	if len(times) != 2 {
		return nil, []error{&MalformedRowError{
			Reason: fmt.Sprintf("expected 2 times, found %d", len(times)),
		}}
	}

	nextDay := false
	if opts.NextDayArrivals {
		dep, depErr := ParseClock(times[0])
		arr, arrErr := ParseClock(times[1])
		nextDay = depErr == nil && arrErr == nil && arr.Minutes() < dep.Minutes()
	}

	var offers []Offer
	var errs []error
	for i, price := range prices {
		offer, err := NewOffer(RawOffer{
			Departure: times[0],
			Arrival:   times[1],
			Price:     price,
			Cabin:     tags[i],
			NextDay:   nextDay,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		offers = append(offers, offer)
	}

	return offers, errs
}
