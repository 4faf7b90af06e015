package fare

import "regexp"

var (
	// e.g. "PKR 12,500" or "AED 950"
	pricePattern = regexp.MustCompile(`[A-Z]{3}\s\d+(?:,\d+)*`)
	// e.g. the "-ES" in "family family-ES"
	cabinPattern = regexp.MustCompile(`-[A-Z]{2,}`)
	// e.g. "1:30 PM"
	timePattern = regexp.MustCompile(`\d{1,2}:\d{2}\s[AP]M`)
)

// FindPrices returns every fare token in text, in order of appearance.
func FindPrices(text string) []string {
	return pricePattern.FindAllString(text, -1)
}

// FindCabins returns every dash-prefixed cabin code in text, dash included.
func FindCabins(text string) []string {
	return cabinPattern.FindAllString(text, -1)
}

// FindTimes returns every 12-hour clock token in text.
func FindTimes(text string) []string {
	return timePattern.FindAllString(text, -1)
}
