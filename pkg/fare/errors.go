package fare

import "fmt"

// MalformedOfferError is returned when the scraped fields of a single offer
// cannot be turned into times, a currency and a price.
type MalformedOfferError struct {
	Field string // "departure", "arrival" or "price"
	Value string
	Err   error
}

func (e *MalformedOfferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed offer %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed offer %s %q", e.Field, e.Value)
}

func (e *MalformedOfferError) Unwrap() error {
	return e.Err
}

// MalformedRowError reports a results row whose times, prices and fare cells
// don't line up, or whose offers failed to build.
type MalformedRowError struct {
	Body   int // index of the tbody inside the trip
	Row    int // index of the row inside the tbody
	Reason string
	Err    error
}

func (e *MalformedRowError) Error() string {
	msg := fmt.Sprintf("malformed row %d in group %d: %s", e.Row, e.Body, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// InvalidArityError is returned by Combine when it is not given exactly one
// or two legs.
type InvalidArityError struct {
	Got int
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("itineraries need one or two legs, got %d", e.Got)
}
