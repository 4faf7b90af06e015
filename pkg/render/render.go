package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"airbluectl/pkg/fare"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Padding(1, 0)
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	printer = message.NewPrinter(language.English)
)

// Amount formats a price with thousands separators, prefixed by its
// currency when known, e.g. "PKR 12,500".
func Amount(currency string, price int) string {
	if currency == "" {
		return printer.Sprintf("%d", price)
	}
	return printer.Sprintf("%s %d", currency, price)
}

// Duration formats d as "3h 30m".
func Duration(d time.Duration) string {
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}

func leg(o fare.Offer) string {
	arrival := o.Arrival().String()
	if o.NextDay() {
		arrival += " (+1)"
	}
	return fmt.Sprintf("%s - %s", o.Departure(), arrival)
}

// Itineraries writes the first limit itineraries as a table. A non-positive
// limit writes all of them.
func Itineraries(w io.Writer, itineraries []fare.Itinerary, limit int) {
	if limit > 0 && len(itineraries) > limit {
		itineraries = itineraries[:limit]
	}

	roundTrip := len(itineraries) > 0 && itineraries[0].RoundTrip()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	if roundTrip {
		tw.AppendHeader(table.Row{"#", "Total", "Outbound", "Duration", "Cabin", "Fare", "Return", "Duration", "Cabin", "Fare"})
	} else {
		tw.AppendHeader(table.Row{"#", "Total", "Flight", "Duration", "Cabin"})
	}

	for i, it := range itineraries {
		out := it.Outbound()
		row := table.Row{i + 1, Amount(it.Currency(), it.Price()), leg(out), Duration(out.Duration()), out.Cabin()}
		if ret, ok := it.Return(); ok {
			row = append(row,
				Amount(out.Currency(), out.Price()),
				leg(ret), Duration(ret.Duration()), ret.Cabin(),
				Amount(ret.Currency(), ret.Price()),
			)
		}
		tw.AppendRow(row)
	}

	tw.Render()
}

// Schedule writes one line per flight with the fare of each open cabin.
func Schedule(w io.Writer, flights []fare.FlightSummary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Flight", "Duration", "Fares"})

	for _, f := range flights {
		fares := make([]string, 0, len(f.Offers))
		for _, o := range f.Offers {
			fares = append(fares, fmt.Sprintf("%s: %s", o.Cabin(), Amount(o.Currency(), o.Price())))
		}
		cheapest := f.Cheapest()
		tw.AppendRow(table.Row{leg(cheapest), Duration(cheapest.Duration()), strings.Join(fares, ", ")})
	}

	tw.Render()
}

// Headline writes a styled title line.
func Headline(w io.Writer, title string) {
	fmt.Fprintln(w, TitleStyle.Render(title))
}

// Warn writes a styled warning line.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, WarnStyle.Render(msg))
}
