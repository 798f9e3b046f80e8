// Package airport holds the static airport directory used for lookups and autocomplete.
package airport

import (
	"strings"

	"github.com/flightprint/flightprint-api/internal/domain"
)

var airports = []domain.Airport{
	// North America
	{Code: "JFK", IATA: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "US", CountryName: "United States"},
	{Code: "LAX", IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "US", CountryName: "United States"},
	{Code: "ORD", IATA: "ORD", ICAO: "KORD", Name: "O'Hare International Airport", City: "Chicago", Country: "US", CountryName: "United States"},
	{Code: "DFW", IATA: "DFW", ICAO: "KDFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "US", CountryName: "United States"},
	{Code: "ATL", IATA: "ATL", ICAO: "KATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "US", CountryName: "United States"},
	{Code: "MIA", IATA: "MIA", ICAO: "KMIA", Name: "Miami International Airport", City: "Miami", Country: "US", CountryName: "United States"},
	{Code: "SFO", IATA: "SFO", ICAO: "KSFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "US", CountryName: "United States"},
	{Code: "BOS", IATA: "BOS", ICAO: "KBOS", Name: "Logan International Airport", City: "Boston", Country: "US", CountryName: "United States"},
	{Code: "SEA", IATA: "SEA", ICAO: "KSEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "US", CountryName: "United States"},
	{Code: "IAD", IATA: "IAD", ICAO: "KIAD", Name: "Washington Dulles International Airport", City: "Washington", Country: "US", CountryName: "United States"},
	{Code: "DCA", IATA: "DCA", ICAO: "KDCA", Name: "Ronald Reagan Washington National Airport", City: "Washington", Country: "US", CountryName: "United States"},
	{Code: "LAS", IATA: "LAS", ICAO: "KLAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "US", CountryName: "United States"},
	{Code: "MCO", IATA: "MCO", ICAO: "KMCO", Name: "Orlando International Airport", City: "Orlando", Country: "US", CountryName: "United States"},
	{Code: "DEN", IATA: "DEN", ICAO: "KDEN", Name: "Denver International Airport", City: "Denver", Country: "US", CountryName: "United States"},
	{Code: "PHX", IATA: "PHX", ICAO: "KPHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "US", CountryName: "United States"},
	{Code: "IAH", IATA: "IAH", ICAO: "KIAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "US", CountryName: "United States"},
	{Code: "EWR", IATA: "EWR", ICAO: "KEWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "US", CountryName: "United States"},
	{Code: "LGA", IATA: "LGA", ICAO: "KLGA", Name: "LaGuardia Airport", City: "New York", Country: "US", CountryName: "United States"},
	{Code: "CLT", IATA: "CLT", ICAO: "KCLT", Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "US", CountryName: "United States"},
	{Code: "MSP", IATA: "MSP", ICAO: "KMSP", Name: "Minneapolis-St Paul International Airport", City: "Minneapolis", Country: "US", CountryName: "United States"},
	{Code: "DTW", IATA: "DTW", ICAO: "KDTW", Name: "Detroit Metropolitan Wayne County Airport", City: "Detroit", Country: "US", CountryName: "United States"},
	{Code: "PDX", IATA: "PDX", ICAO: "KPDX", Name: "Portland International Airport", City: "Portland", Country: "US", CountryName: "United States"},
	{Code: "SAN", IATA: "SAN", ICAO: "KSAN", Name: "San Diego International Airport", City: "San Diego", Country: "US", CountryName: "United States"},
	{Code: "YYZ", IATA: "YYZ", ICAO: "CYYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "CA", CountryName: "Canada"},
	{Code: "YVR", IATA: "YVR", ICAO: "CYVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "CA", CountryName: "Canada"},
	{Code: "YUL", IATA: "YUL", ICAO: "CYUL", Name: "Montreal-Pierre Elliott Trudeau International Airport", City: "Montreal", Country: "CA", CountryName: "Canada"},
	{Code: "MEX", IATA: "MEX", ICAO: "MMMX", Name: "Mexico City International Airport", City: "Mexico City", Country: "MX", CountryName: "Mexico"},

	// Europe
	{Code: "LHR", IATA: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "GB", CountryName: "United Kingdom"},
	{Code: "LGW", IATA: "LGW", ICAO: "EGKK", Name: "London Gatwick Airport", City: "London", Country: "GB", CountryName: "United Kingdom"},
	{Code: "CDG", IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "FR", CountryName: "France"},
	{Code: "ORY", IATA: "ORY", ICAO: "LFPO", Name: "Paris Orly Airport", City: "Paris", Country: "FR", CountryName: "France"},
	{Code: "FRA", IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt Airport", City: "Frankfurt", Country: "DE", CountryName: "Germany"},
	{Code: "AMS", IATA: "AMS", ICAO: "EHAM", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "NL", CountryName: "Netherlands"},
	{Code: "MAD", IATA: "MAD", ICAO: "LEMD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "ES", CountryName: "Spain"},
	{Code: "BCN", IATA: "BCN", ICAO: "LEBL", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "ES", CountryName: "Spain"},
	{Code: "FCO", IATA: "FCO", ICAO: "LIRF", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "IT", CountryName: "Italy"},
	{Code: "MXP", IATA: "MXP", ICAO: "LIMC", Name: "Milan Malpensa Airport", City: "Milan", Country: "IT", CountryName: "Italy"},
	{Code: "MUC", IATA: "MUC", ICAO: "EDDM", Name: "Munich Airport", City: "Munich", Country: "DE", CountryName: "Germany"},
	{Code: "ZRH", IATA: "ZRH", ICAO: "LSZH", Name: "Zurich Airport", City: "Zurich", Country: "CH", CountryName: "Switzerland"},
	{Code: "VIE", IATA: "VIE", ICAO: "LOWW", Name: "Vienna International Airport", City: "Vienna", Country: "AT", CountryName: "Austria"},
	{Code: "BRU", IATA: "BRU", ICAO: "EBBR", Name: "Brussels Airport", City: "Brussels", Country: "BE", CountryName: "Belgium"},
	{Code: "CPH", IATA: "CPH", ICAO: "EKCH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "DK", CountryName: "Denmark"},
	{Code: "ARN", IATA: "ARN", ICAO: "ESSA", Name: "Stockholm Arlanda Airport", City: "Stockholm", Country: "SE", CountryName: "Sweden"},
	{Code: "OSL", IATA: "OSL", ICAO: "ENGM", Name: "Oslo Airport", City: "Oslo", Country: "NO", CountryName: "Norway"},
	{Code: "HEL", IATA: "HEL", ICAO: "EFHK", Name: "Helsinki-Vantaa Airport", City: "Helsinki", Country: "FI", CountryName: "Finland"},
	{Code: "DUB", IATA: "DUB", ICAO: "EIDW", Name: "Dublin Airport", City: "Dublin", Country: "IE", CountryName: "Ireland"},
	{Code: "LIS", IATA: "LIS", ICAO: "LPPT", Name: "Lisbon Portela Airport", City: "Lisbon", Country: "PT", CountryName: "Portugal"},
	{Code: "ATH", IATA: "ATH", ICAO: "LGAV", Name: "Athens International Airport", City: "Athens", Country: "GR", CountryName: "Greece"},
	{Code: "IST", IATA: "IST", ICAO: "LTFM", Name: "Istanbul Airport", City: "Istanbul", Country: "TR", CountryName: "Turkey"},
	{Code: "PRG", IATA: "PRG", ICAO: "LKPR", Name: "Václav Havel Airport Prague", City: "Prague", Country: "CZ", CountryName: "Czech Republic"},
	{Code: "WAW", IATA: "WAW", ICAO: "EPWA", Name: "Warsaw Chopin Airport", City: "Warsaw", Country: "PL", CountryName: "Poland"},

	// Asia
	{Code: "NRT", IATA: "NRT", ICAO: "RJAA", Name: "Narita International Airport", City: "Tokyo", Country: "JP", CountryName: "Japan"},
	{Code: "HND", IATA: "HND", ICAO: "RJTT", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "JP", CountryName: "Japan"},
	{Code: "ICN", IATA: "ICN", ICAO: "RKSI", Name: "Incheon International Airport", City: "Seoul", Country: "KR", CountryName: "South Korea"},
	{Code: "PVG", IATA: "PVG", ICAO: "ZSPD", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "CN", CountryName: "China"},
	{Code: "PEK", IATA: "PEK", ICAO: "ZBAA", Name: "Beijing Capital International Airport", City: "Beijing", Country: "CN", CountryName: "China"},
	{Code: "HKG", IATA: "HKG", ICAO: "VHHH", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "HK", CountryName: "Hong Kong"},
	{Code: "SIN", IATA: "SIN", ICAO: "WSSS", Name: "Singapore Changi Airport", City: "Singapore", Country: "SG", CountryName: "Singapore"},
	{Code: "BKK", IATA: "BKK", ICAO: "VTBS", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "TH", CountryName: "Thailand"},
	{Code: "KUL", IATA: "KUL", ICAO: "WMKK", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "MY", CountryName: "Malaysia"},
	{Code: "MNL", IATA: "MNL", ICAO: "RPLL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "PH", CountryName: "Philippines"},
	{Code: "CGK", IATA: "CGK", ICAO: "WIII", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "ID", CountryName: "Indonesia"},
	{Code: "DEL", IATA: "DEL", ICAO: "VIDP", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "IN", CountryName: "India"},
	{Code: "BOM", IATA: "BOM", ICAO: "VABB", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "IN", CountryName: "India"},
	{Code: "BLR", IATA: "BLR", ICAO: "VOBL", Name: "Kempegowda International Airport", City: "Bangalore", Country: "IN", CountryName: "India"},
	{Code: "DXB", IATA: "DXB", ICAO: "OMDB", Name: "Dubai International Airport", City: "Dubai", Country: "AE", CountryName: "United Arab Emirates"},
	{Code: "AUH", IATA: "AUH", ICAO: "OMAA", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "AE", CountryName: "United Arab Emirates"},
	{Code: "DOH", IATA: "DOH", ICAO: "OTHH", Name: "Hamad International Airport", City: "Doha", Country: "QA", CountryName: "Qatar"},
	{Code: "KWI", IATA: "KWI", ICAO: "OKBK", Name: "Kuwait International Airport", City: "Kuwait City", Country: "KW", CountryName: "Kuwait"},
	{Code: "BAH", IATA: "BAH", ICAO: "OBBI", Name: "Bahrain International Airport", City: "Manama", Country: "BH", CountryName: "Bahrain"},
	{Code: "TLV", IATA: "TLV", ICAO: "LLBG", Name: "Ben Gurion Airport", City: "Tel Aviv", Country: "IL", CountryName: "Israel"},
	{Code: "CMB", IATA: "CMB", ICAO: "VCBI", Name: "Bandaranaike International Airport", City: "Colombo", Country: "LK", CountryName: "Sri Lanka"},

	// Oceania
	{Code: "SYD", IATA: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "AU", CountryName: "Australia"},
	{Code: "MEL", IATA: "MEL", ICAO: "YMML", Name: "Melbourne Airport", City: "Melbourne", Country: "AU", CountryName: "Australia"},
	{Code: "BNE", IATA: "BNE", ICAO: "YBBN", Name: "Brisbane Airport", City: "Brisbane", Country: "AU", CountryName: "Australia"},
	{Code: "PER", IATA: "PER", ICAO: "YPPH", Name: "Perth Airport", City: "Perth", Country: "AU", CountryName: "Australia"},
	{Code: "AKL", IATA: "AKL", ICAO: "NZAA", Name: "Auckland Airport", City: "Auckland", Country: "NZ", CountryName: "New Zealand"},
	{Code: "CHC", IATA: "CHC", ICAO: "NZCH", Name: "Christchurch International Airport", City: "Christchurch", Country: "NZ", CountryName: "New Zealand"},

	// South America
	{Code: "GRU", IATA: "GRU", ICAO: "SBGR", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "BR", CountryName: "Brazil"},
	{Code: "GIG", IATA: "GIG", ICAO: "SBGL", Name: "Rio de Janeiro/Galeão International Airport", City: "Rio de Janeiro", Country: "BR", CountryName: "Brazil"},
	{Code: "EZE", IATA: "EZE", ICAO: "SAEZ", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "AR", CountryName: "Argentina"},
	{Code: "SCL", IATA: "SCL", ICAO: "SCEL", Name: "Arturo Merino Benítez International Airport", City: "Santiago", Country: "CL", CountryName: "Chile"},
	{Code: "BOG", IATA: "BOG", ICAO: "SKBO", Name: "El Dorado International Airport", City: "Bogotá", Country: "CO", CountryName: "Colombia"},
	{Code: "LIM", IATA: "LIM", ICAO: "SPJC", Name: "Jorge Chávez International Airport", City: "Lima", Country: "PE", CountryName: "Peru"},

	// Africa
	{Code: "JNB", IATA: "JNB", ICAO: "FAJS", Name: "OR Tambo International Airport", City: "Johannesburg", Country: "ZA", CountryName: "South Africa"},
	{Code: "CPT", IATA: "CPT", ICAO: "FACT", Name: "Cape Town International Airport", City: "Cape Town", Country: "ZA", CountryName: "South Africa"},
	{Code: "CAI", IATA: "CAI", ICAO: "HECA", Name: "Cairo International Airport", City: "Cairo", Country: "EG", CountryName: "Egypt"},
	{Code: "NBO", IATA: "NBO", ICAO: "HKJK", Name: "Jomo Kenyatta International Airport", City: "Nairobi", Country: "KE", CountryName: "Kenya"},
	{Code: "ADD", IATA: "ADD", ICAO: "HAAB", Name: "Addis Ababa Bole International Airport", City: "Addis Ababa", Country: "ET", CountryName: "Ethiopia"},
}

var popularCodes = []string{
	"JFK", "LAX", "LHR", "DXB", "HND", "CDG", "FRA", "SIN",
	"AMS", "ICN", "CMB", "BOM", "DEL", "SYD", "MEL",
}

var byCode = indexAirports(airports)

func indexAirports(list []domain.Airport) map[string]domain.Airport {
	idx := make(map[string]domain.Airport, len(list)*2)
	for _, a := range list {
		idx[a.Code] = a
		if a.IATA != "" {
			idx[a.IATA] = a
		}
		if a.ICAO != "" {
			idx[a.ICAO] = a
		}
	}
	return idx
}

// All returns every airport in directory order.
func All() []domain.Airport {
	out := make([]domain.Airport, len(airports))
	copy(out, airports)
	return out
}

// Lookup finds an airport by its code, IATA or ICAO identifier, ignoring case.
func Lookup(code string) (domain.Airport, bool) {
	a, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Popular returns the curated list of frequently searched airports.
func Popular() []domain.Airport {
	out := make([]domain.Airport, 0, len(popularCodes))
	for _, code := range popularCodes {
		if a, ok := byCode[code]; ok {
			out = append(out, a)
		}
	}
	return out
}
