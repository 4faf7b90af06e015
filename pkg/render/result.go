package render

import (
	"fmt"
	"io"

	"airbluectl/pkg/airblue"
	"airbluectl/pkg/fare"
)

// ResultOptions controls how a search result is printed.
type ResultOptions struct {
	Limit    int
	Schedule bool // list flights with all open cabins instead of ranked itineraries
}

// Result prints a search result the way the search command shows it.
func Result(w io.Writer, r *airblue.SearchResult, opts ResultOptions) {
	q := r.Query

	if r.ReturnUnavailable {
		Warn(w, fmt.Sprintf("No return flights on %s, showing one-way fares only.", q.Return.Format(airblue.DateLayout)))
	}
	if n := len(r.Skipped); n > 0 {
		Warn(w, fmt.Sprintf("%d result rows could not be read and were skipped (run with --verbose for details).", n))
	}

	if len(r.Itineraries) == 0 {
		fmt.Fprintln(w, "There are no flights available")
		return
	}

	if opts.Schedule {
		Headline(w, fmt.Sprintf("%s → %s on %s", q.From, q.To, q.Depart.Format(airblue.DateLayout)))
		Schedule(w, fare.SummarizeFlights(r.Outbound, 0))
		if len(r.Return) > 0 {
			Headline(w, fmt.Sprintf("%s → %s on %s", q.To, q.From, q.Return.Format(airblue.DateLayout)))
			Schedule(w, fare.SummarizeFlights(r.Return, 0))
		}
		return
	}

	title := fmt.Sprintf("Cheapest fares %s → %s on %s", q.From, q.To, q.Depart.Format(airblue.DateLayout))
	if r.Itineraries[0].RoundTrip() {
		title = fmt.Sprintf("Cheapest round trips %s ⇄ %s, %s to %s",
			q.From, q.To, q.Depart.Format(airblue.DateLayout), q.Return.Format(airblue.DateLayout))
	}
	Headline(w, title)
	Itineraries(w, r.Itineraries, opts.Limit)

	if opts.Limit > 0 && len(r.Itineraries) > opts.Limit {
		fmt.Fprintf(w, "Showing %d of %d options.\n", opts.Limit, len(r.Itineraries))
	}
}
