package fare

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cabin is the fare family an offer was sold in.
type Cabin int

const (
	CabinUnknown Cabin = iota
	CabinEconomyStandard
	CabinEconomyDiscount
)

func (c Cabin) String() string {
	switch c {
	case CabinEconomyStandard:
		return "Economy Standard"
	case CabinEconomyDiscount:
		return "Economy Discount"
	default:
		return "Unknown"
	}
}

// ParseCabin maps a short cabin code ("ES", "ED") to a Cabin.
func ParseCabin(code string) Cabin {
	switch strings.ToUpper(strings.TrimPrefix(code, "-")) {
	case "ES":
		return CabinEconomyStandard
	case "ED":
		return CabinEconomyDiscount
	default:
		return CabinUnknown
	}
}

// CabinFromTag resolves the cabin from a fare cell's class attribute,
// e.g. "family family-ES".
func CabinFromTag(tag string) Cabin {
	codes := FindCabins(tag)
	if len(codes) == 0 {
		return CabinUnknown
	}
	return ParseCabin(codes[0])
}

const clockLayout = "3:04 PM"

// Clock is a time of day on a 24 hour clock.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 12-hour value like "1:30 PM".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.Join(strings.Fields(s), " "))
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns the minutes elapsed since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return time.Date(0, 1, 1, c.Hour, c.Minute, 0, 0, time.UTC).Format(clockLayout)
}

// RawOffer holds the strings scraped for one offer.
type RawOffer struct {
	Departure string // "10:00 AM"
	Arrival   string // "1:30 PM"
	Price     string // "PKR 12,500"
	Cabin     string // class attribute of the fare cell

	// NextDay marks an arrival on the day after the departure. Without it
	// both times are taken to be on the same day.
	NextDay bool
}

// Offer is one priced, cabin-specific flight option. The zero value is not
// useful; build offers with NewOffer.
type Offer struct {
	departure Clock
	arrival   Clock
	nextDay   bool
	currency  string
	price     int
	cabin     Cabin
}

var errArrivalBeforeDeparture = errors.New("arrival is before departure")

// NewOffer validates raw and builds an Offer from it.
func NewOffer(raw RawOffer) (Offer, error) {
	dep, err := ParseClock(raw.Departure)
	if err != nil {
		return Offer{}, &MalformedOfferError{Field: "departure", Value: raw.Departure, Err: err}
	}
	arr, err := ParseClock(raw.Arrival)
	if err != nil {
		return Offer{}, &MalformedOfferError{Field: "arrival", Value: raw.Arrival, Err: err}
	}
	if !raw.NextDay && arr.Minutes() < dep.Minutes() {
		return Offer{}, &MalformedOfferError{Field: "arrival", Value: raw.Arrival, Err: errArrivalBeforeDeparture}
	}

	currency, price, err := parsePrice(raw.Price)
	if err != nil {
		return Offer{}, &MalformedOfferError{Field: "price", Value: raw.Price, Err: err}
	}

	return Offer{
		departure: dep,
		arrival:   arr,
		nextDay:   raw.NextDay,
		currency:  currency,
		price:     price,
		cabin:     CabinFromTag(raw.Cabin),
	}, nil
}

// parsePrice splits "PKR 12,500" into ("PKR", 12500).
func parsePrice(s string) (string, int, error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", ""))
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("expected currency and amount, got %d parts", len(parts))
	}

	currency := parts[0]
	if !isCurrencyCode(currency) {
		return "", 0, fmt.Errorf("invalid currency code %q", currency)
	}

	amount, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, err
	}
	if amount < 0 {
		return "", 0, fmt.Errorf("negative amount %d", amount)
	}

	return currency, amount, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (o Offer) Departure() Clock { return o.departure }
func (o Offer) Arrival() Clock   { return o.arrival }
func (o Offer) NextDay() bool    { return o.nextDay }
func (o Offer) Currency() string { return o.currency }
func (o Offer) Price() int       { return o.price }
func (o Offer) Cabin() Cabin     { return o.cabin }

// Duration is the time between departure and arrival.
func (o Offer) Duration() time.Duration {
	minutes := o.arrival.Minutes() - o.departure.Minutes()
	if o.nextDay {
		minutes += 24 * 60
	}
	return time.Duration(minutes) * time.Minute
}

func (o Offer) String() string {
	return fmt.Sprintf("%s-%s %s %s %d", o.departure, o.arrival, o.cabin, o.currency, o.price)
}

type offerJSON struct {
	Departure       string `json:"departure"`
	Arrival         string `json:"arrival"`
	NextDay         bool   `json:"next_day,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	Currency        string `json:"currency"`
	Price           int    `json:"price"`
	Cabin           string `json:"cabin"`
}

func (o Offer) MarshalJSON() ([]byte, error) {
	return json.Marshal(offerJSON{
		Departure:       o.departure.String(),
		Arrival:         o.arrival.String(),
		NextDay:         o.nextDay,
		DurationMinutes: int(o.Duration() / time.Minute),
		Currency:        o.currency,
		Price:           o.price,
		Cabin:           o.cabin.String(),
	})
}
