package enrich

import "strings"

// CountryInfo holds static geographic metadata for a country.
type CountryInfo struct {
	ISO       string
	Continent string
	Region    string
}

// countryTable maps lowercase country names to their metadata. Countries
// missing from the table simply stay unenriched.
var countryTable = map[string]CountryInfo{
	"afghanistan":    {"AF", "Asia", "South Asia"},
	"albania":        {"AL", "Europe", "Southeast Europe"},
	"algeria":        {"DZ", "Africa", "North Africa"},
	"argentina":      {"AR", "South America", "South America"},
	"australia":      {"AU", "Oceania", "Australia and New Zealand"},
	"austria":        {"AT", "Europe", "Western Europe"},
	"bangladesh":     {"BD", "Asia", "South Asia"},
	"belgium":        {"BE", "Europe", "Western Europe"},
	"brazil":         {"BR", "South America", "South America"},
	"cambodia":       {"KH", "Asia", "Southeast Asia"},
	"canada":         {"CA", "North America", "North America"},
	"china":          {"CN", "Asia", "East Asia"},
	"colombia":       {"CO", "South America", "South America"},
	"croatia":        {"HR", "Europe", "Southeast Europe"},
	"czech republic": {"CZ", "Europe", "Eastern Europe"},
	"denmark":        {"DK", "Europe", "Northern Europe"},
	"ecuador":        {"EC", "South America", "South America"},
	"egypt":          {"EG", "Africa", "North Africa"},
	"ethiopia":       {"ET", "Africa", "East Africa"},
	"france":         {"FR", "Europe", "Western Europe"},
	"germany":        {"DE", "Europe", "Western Europe"},
	"greece":         {"GR", "Europe", "Southern Europe"},
	"guatemala":      {"GT", "North America", "Central America"},
	"india":          {"IN", "Asia", "South Asia"},
	"indonesia":      {"ID", "Asia", "Southeast Asia"},
	"iran":           {"IR", "Asia", "Western Asia"},
	"iraq":           {"IQ", "Asia", "Western Asia"},
	"italy":          {"IT", "Europe", "Southern Europe"},
	"japan":          {"JP", "Asia", "East Asia"},
	"jordan":         {"JO", "Asia", "Western Asia"},
	"kenya":          {"KE", "Africa", "East Africa"},
	"madagascar":     {"MG", "Africa", "East Africa"},
	"malaysia":       {"MY", "Asia", "Southeast Asia"},
	"mexico":         {"MX", "North America", "North America"},
	"morocco":        {"MA", "Africa", "North Africa"},
	"nepal":          {"NP", "Asia", "South Asia"},
	"netherlands":    {"NL", "Europe", "Western Europe"},
	"new zealand":    {"NZ", "Oceania", "Australia and New Zealand"},
	"norway":         {"NO", "Europe", "Northern Europe"},
	"pakistan":       {"PK", "Asia", "South Asia"},
	"peru":           {"PE", "South America", "South America"},
	"poland":         {"PL", "Europe", "Eastern Europe"},
	"portugal":       {"PT", "Europe", "Southern Europe"},
	"romania":        {"RO", "Europe", "Eastern Europe"},
	"russia":         {"RU", "Europe", "Eastern Europe"},
	"senegal":        {"SN", "Africa", "West Africa"},
	"south africa":   {"ZA", "Africa", "Southern Africa"},
	"spain":          {"ES", "Europe", "Southern Europe"},
	"sri lanka":      {"LK", "Asia", "South Asia"},
	"sweden":         {"SE", "Europe", "Northern Europe"},
	"switzerland":    {"CH", "Europe", "Western Europe"},
	"syria":          {"SY", "Asia", "Western Asia"},
	"tanzania":       {"TZ", "Africa", "East Africa"},
	"thailand":       {"TH", "Asia", "Southeast Asia"},
	"tunisia":        {"TN", "Africa", "North Africa"},
	"turkey":         {"TR", "Asia", "Western Asia"},
	"ukraine":        {"UA", "Europe", "Eastern Europe"},
	"united kingdom": {"GB", "Europe", "Northern Europe"},
	"united states":  {"US", "North America", "North America"},
	"vatican city":   {"VA", "Europe", "Southern Europe"},
	"vietnam":        {"VN", "Asia", "Southeast Asia"},
	"yemen":          {"YE", "Asia", "Western Asia"},
	"zimbabwe":       {"ZW", "Africa", "Southern Africa"},
}

// LookupCountry returns metadata for a country name, matching
// case-insensitively.
func LookupCountry(name string) (CountryInfo, bool) {
	info, ok := countryTable[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}
