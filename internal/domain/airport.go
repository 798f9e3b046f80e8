package domain

// Airport is an entry of the airport directory.
type Airport struct {
	Code        string `json:"code"`
	IATA        string `json:"iata"`
	ICAO        string `json:"icao"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryName string `json:"countryName"`
}
