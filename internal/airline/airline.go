// Package airline is a static directory of carrier names and the premium carrier subset.
package airline

import (
	"sort"
	"strings"

	"github.com/flightprint/flightprint-api/internal/domain"
)

var names = map[string]string{
	// Major international
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"BA": "British Airways",
	"AF": "Air France",
	"LH": "Lufthansa",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"EY": "Etihad Airways",
	"TK": "Turkish Airlines",
	"KL": "KLM",
	"AC": "Air Canada",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"CX": "Cathay Pacific",
	"QF": "Qantas",
	"VS": "Virgin Atlantic",
	"AZ": "ITA Airways",
	"IB": "Iberia",
	"LX": "Swiss International Air Lines",
	"OS": "Austrian Airlines",
	"SN": "Brussels Airlines",
	"SK": "SAS Scandinavian Airlines",
	"AY": "Finnair",
	"TP": "TAP Air Portugal",

	// Asia
	"UL": "SriLankan Airlines",
	"AI": "Air India",
	"SV": "Saudia",
	"MS": "EgyptAir",
	"TG": "Thai Airways",
	"MH": "Malaysia Airlines",
	"GA": "Garuda Indonesia",
	"KE": "Korean Air",
	"OZ": "Asiana Airlines",
	"BR": "EVA Air",
	"CI": "China Airlines",
	"CA": "Air China",
	"MU": "China Eastern",
	"CZ": "China Southern",
	"HU": "Hainan Airlines",

	// Middle East
	"GF": "Gulf Air",
	"RJ": "Royal Jordanian",
	"ME": "Middle East Airlines",
	"WY": "Oman Air",
	"KU": "Kuwait Airways",

	// Low cost
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"G4": "Allegiant Air",
	"FR": "Ryanair",
	"U2": "easyJet",
	"VY": "Vueling",
	"W6": "Wizz Air",
	"FZ": "flydubai",
	"WK": "Edelweiss Air",
	"6E": "IndiGo",
	"SG": "SpiceJet",

	// Americas and Africa
	"AS": "Alaska Airlines",
	"WS": "WestJet",
	"LA": "LATAM Airlines",
	"AM": "Aeroméxico",
	"CM": "Copa Airlines",
	"ET": "Ethiopian Airlines",
	"KQ": "Kenya Airways",
	"SA": "South African Airways",
}

// premium carriers earn a ranking bonus.
var premium = map[string]struct{}{
	"EK": {}, "QR": {}, "SQ": {}, "EY": {}, "BA": {}, "AF": {}, "LH": {},
	"AA": {}, "UA": {}, "DL": {}, "CX": {}, "QF": {}, "NH": {}, "JL": {},
	"TK": {}, "KL": {}, "VS": {}, "AC": {}, "UL": {}, "AI": {}, "TG": {},
	"MH": {}, "KE": {}, "LX": {}, "OS": {}, "IB": {}, "AZ": {},
}

// Name returns the display name for a carrier code, or the code itself when unknown.
func Name(code string) string {
	if name, ok := names[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// IsPremium reports whether the carrier belongs to the premium set.
func IsPremium(code string) bool {
	_, ok := premium[strings.ToUpper(code)]
	return ok
}

// All returns every known carrier sorted by code.
func All() []domain.AirlineInfo {
	out := make([]domain.AirlineInfo, 0, len(names))
	for code, name := range names {
		out = append(out, domain.AirlineInfo{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
