package airblue

import (
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Results is a parsed booking results page.
type Results struct {
	doc *goquery.Document
}

// ParseResults parses a results page.
func ParseResults(r io.Reader) (*Results, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Results{doc: doc}, nil
}

// NoFlights reports whether the page shows the "no flights" notice instead
// of result tables. The notice is bare text in a table cell under #content.
func (r *Results) NoFlights() bool {
	if r.doc.Find(`[id^="trip_"]`).Length() > 0 {
		return false
	}

	found := false
	r.doc.Find("#content > div > table > tbody > tr > td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		found = directText(td) != ""
		return !found
	})
	return found
}

// directText joins the text nodes directly under sel, skipping the text
// of child elements.
func directText(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		for _, n := range c.Nodes {
			if n.Type == html.TextNode {
				b.WriteString(n.Data)
			}
		}
	})
	return strings.TrimSpace(b.String())
}

// Trip returns the results table for leg 1 (outbound) or 2 (return).
func (r *Results) Trip(leg int, date time.Time) (*goquery.Selection, bool) {
	sel := r.doc.Find("#" + TripID(leg, date))
	if sel.Length() == 0 {
		return nil, false
	}
	return sel.First(), true
}
