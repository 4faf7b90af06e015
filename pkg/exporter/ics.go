package exporter

import (
	"fmt"
	"io"
	"time"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/fare"
	"airbluectl/pkg/render"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes one calendar event per leg of it. The outbound leg
// falls on q.Depart and the return leg on q.Return; clock times are read in loc.
func GenerateICS(it fare.Itinerary, q airblue.Query, loc *time.Location, w io.Writer) error {
	dates := []time.Time{q.Depart}
	if q.Return != nil {
		dates = append(dates, *q.Return)
	}
	if len(dates) < len(it.Legs) {
		return fmt.Errorf("itinerary has %d legs but only %d travel dates", len(it.Legs), len(dates))
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	routes := [][2]string{{q.From, q.To}, {q.To, q.From}}

	for i, leg := range it.Legs {
		day := dates[i]
		start := time.Date(day.Year(), day.Month(), day.Day(), leg.Departure().Hour, leg.Departure().Minute, 0, 0, loc)
		end := start.Add(leg.Duration())

		event := cal.AddEvent(fmt.Sprintf("%s-%s-%s", routes[i][0], routes[i][1], start.UTC().Format("20060102T150405Z")))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("✈ %s → %s", routes[i][0], routes[i][1]))
		event.SetLocation(routeName(routes[i][0]))

		description := fmt.Sprintf("Cabin: %s\nFare: %s", leg.Cabin(), render.Amount(leg.Currency(), leg.Price()))
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}

func routeName(code string) string {
	if name, ok := airblue.Stations[code]; ok {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return code
}
