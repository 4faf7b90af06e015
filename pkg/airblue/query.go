package airblue

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the date format accepted on the command line.
const DateLayout = "2006-01-02"

// Query describes one flight search.
type Query struct {
	From       string
	To         string
	Depart     time.Time
	Return     *time.Time // nil for one-way
	Passengers int
}

var upper = cases.Upper(language.Und)

// ParseQuery builds a Query from command line strings. ret may be empty.
func ParseQuery(from, to, depart, ret string) (Query, error) {
	q := Query{
		From:       upper.String(strings.TrimSpace(from)),
		To:         upper.String(strings.TrimSpace(to)),
		Passengers: 1,
	}

	d, err := time.Parse(DateLayout, strings.TrimSpace(depart))
	if err != nil {
		return q, fmt.Errorf("invalid departure date %q (expected YYYY-MM-DD)", depart)
	}
	q.Depart = d

	if strings.TrimSpace(ret) != "" {
		r, err := time.Parse(DateLayout, strings.TrimSpace(ret))
		if err != nil {
			return q, fmt.Errorf("invalid return date %q (expected YYYY-MM-DD)", ret)
		}
		q.Return = &r
	}

	return q, nil
}

// RoundTrip reports whether a return date was requested.
func (q Query) RoundTrip() bool {
	return q.Return != nil
}

// Validate checks the query the way the booking form would: three letter
// airport codes, no dates in the past and the return not before departure.
func (q Query) Validate(now time.Time) error {
	if err := ValidateIATA(q.From); err != nil {
		return fmt.Errorf("departure city: %w", err)
	}
	if err := ValidateIATA(q.To); err != nil {
		return fmt.Errorf("arrival city: %w", err)
	}
	if q.From == q.To {
		return fmt.Errorf("departure and arrival city are both %s", q.From)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if q.Depart.Before(today) {
		return fmt.Errorf("departure date %s is in the past", q.Depart.Format(DateLayout))
	}
	if q.Return != nil {
		if q.Return.Before(today) {
			return fmt.Errorf("return date %s is in the past", q.Return.Format(DateLayout))
		}
		if q.Return.Before(q.Depart) {
			return fmt.Errorf("return date %s is before departure date %s",
				q.Return.Format(DateLayout), q.Depart.Format(DateLayout))
		}
	}
	if q.Passengers < 1 {
		return fmt.Errorf("at least one passenger is required")
	}

	return nil
}

// ValidateIATA checks that code looks like an airport code. Unknown but
// well-formed codes are accepted; the site decides whether it serves them.
func ValidateIATA(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("%q is not a 3 letter IATA code", code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%q is not a 3 letter IATA code", code)
		}
	}
	return nil
}

// Params encodes the query as the booking page expects it.
func (q Query) Params() url.Values {
	v := url.Values{}
	v.Set("PA", strconv.Itoa(q.Passengers))
	v.Set("DC", q.From)
	v.Set("AC", q.To)
	v.Set("TT", "OW")
	v.Set("AM", q.Depart.Format("2006-01"))
	v.Set("AD", q.Depart.Format("02"))

	if q.Return != nil {
		v.Set("TT", "RT")
		v.Set("RM", q.Return.Format("2006-01"))
		v.Set("RD", q.Return.Format("02"))
	}
	return v
}

// TripID is the element id of the results table for leg 1 (outbound) or
// leg 2 (return) on the given date, e.g. "trip_1_date_2024_05_01".
func TripID(leg int, date time.Time) string {
	return fmt.Sprintf("trip_%d_date_%s", leg, date.Format("2006_01_02"))
}
