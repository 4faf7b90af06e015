package tui

import (
	"fmt"
	"strings"
	"time"

	"airbluectl/pkg/airblue"
)

// validateAirport rejects malformed codes and codes airblue doesn't fly to,
// suggesting the closest known station.
func validateAirport(s string) error {
	code := strings.ToUpper(strings.TrimSpace(s))
	if err := airblue.ValidateIATA(code); err != nil {
		return err
	}
	if airblue.KnownStation(code) {
		return nil
	}
	if suggestion, ok := airblue.SuggestStation(code); ok {
		return fmt.Errorf("%s is not an airblue station, did you mean %s (%s)?", code, suggestion, airblue.Stations[suggestion])
	}
	return fmt.Errorf("%s is not an airblue station", code)
}

func validateDate(s string, now time.Time) error {
	d, err := time.Parse(airblue.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter the date as YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return fmt.Errorf("date is in the past")
	}
	return nil
}

// validateReturn accepts an empty value for one-way trips.
func validateReturn(depart, ret string, now time.Time) error {
	if strings.TrimSpace(ret) == "" {
		return nil
	}
	if err := validateDate(ret, now); err != nil {
		return err
	}
	d, err := time.Parse(airblue.DateLayout, strings.TrimSpace(depart))
	if err != nil {
		return nil // reported on the departure field
	}
	r, _ := time.Parse(airblue.DateLayout, strings.TrimSpace(ret))
	if r.Before(d) {
		return fmt.Errorf("return date is before the departure date")
	}
	return nil
}
