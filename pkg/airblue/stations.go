package airblue

import (
	"github.com/antzucaro/matchr"
)

// Stations lists the airports served by airblue, by IATA code.
var Stations = map[string]string{
	"KHI": "Karachi",
	"LHE": "Lahore",
	"ISB": "Islamabad",
	"PEW": "Peshawar",
	"UET": "Quetta",
	"MUX": "Multan",
	"SKT": "Sialkot",
	"DXB": "Dubai",
	"SHJ": "Sharjah",
	"AUH": "Abu Dhabi",
	"JED": "Jeddah",
	"RUH": "Riyadh",
	"MED": "Madinah",
	"DMM": "Dammam",
	"MCT": "Muscat",
	"MAN": "Manchester",
}

// KnownStation reports whether code is an airblue station.
func KnownStation(code string) bool {
	_, ok := Stations[code]
	return ok
}

// SuggestStation returns the known station code closest to code, if any is
// reasonably close.
func SuggestStation(code string) (string, bool) {
	best := ""
	bestScore := 0.0
	for known := range Stations {
		score := matchr.JaroWinkler(code, known, false)
		if score > bestScore || (score == bestScore && known < best) {
			best, bestScore = known, score
		}
	}
	if bestScore < 0.7 {
		return "", false
	}
	return best, true
}
