package airports

import (
	"regexp"
	"strings"

	"github.com/dharmasatrya/flightscraper/internal/models"
)

// There is no airport-lookup endpoint; candidates are mined out of page
// markup and inline script data instead. Each strategy is an independent
// extraction function over raw HTML so it can be tested on its own and the
// cascade stays a flat list rather than nested conditionals.
type strategy struct {
	name    string
	extract func(html string) []models.AirportResult
}

var strategies = []strategy{
	{"ordinal-pairs", extractOrdinalPairs},
	{"attribute-markers", extractAttributeMarkers},
	{"script-pairs", extractScriptPairs},
}

// How far around a match to look for city and country references.
const contextWindow = 400

var (
	// [code, ordinal] followed by a quoted display name.
	codeOrdinalRe = regexp.MustCompile(`\["([A-Z]{3})",\s*\d+\]\s*,\s*"([^"]+)"`)

	// Airport-code attribute markers paired with their accessible label.
	attrMarkerRe = regexp.MustCompile(`data-code="([A-Z]{3})"[^>]*aria-label="([^"]+)"`)

	// Loose [code, name] pairs inside inline script data.
	scriptPairRe = regexp.MustCompile(`\["([A-Z]{3})","([^"]*(?i:airport|international|airfield)[^"]*)"`)

	airportKeywordRe = regexp.MustCompile(`(?i)\b(airport|international|airfield|air base|aerodrome)\b`)

	// A quoted capitalized phrase, the shape city names take in the blob.
	cityRe = regexp.MustCompile(`"([A-Z][a-z]+(?: [A-Z][a-z]+)*)"`)

	// A quoted two-letter country code.
	countryRe = regexp.MustCompile(`"([A-Z]{2})"`)
)

func extractOrdinalPairs(html string) []models.AirportResult {
	var results []models.AirportResult
	for _, loc := range codeOrdinalRe.FindAllStringSubmatchIndex(html, -1) {
		code := html[loc[2]:loc[3]]
		name := html[loc[4]:loc[5]]
		if !airportKeywordRe.MatchString(name) {
			continue
		}

		winStart := loc[0] - contextWindow
		if winStart < 0 {
			winStart = 0
		}
		winEnd := loc[1] + contextWindow
		if winEnd > len(html) {
			winEnd = len(html)
		}
		window := html[winStart:winEnd]

		results = append(results, models.AirportResult{
			Code:    code,
			Name:    name,
			City:    findCity(window, name),
			Country: findCountry(window),
		})
	}
	return results
}

func extractAttributeMarkers(html string) []models.AirportResult {
	var results []models.AirportResult
	for _, m := range attrMarkerRe.FindAllStringSubmatch(html, -1) {
		results = append(results, models.AirportResult{
			Code: m[1],
			Name: strings.TrimSpace(m[2]),
		})
	}
	return results
}

func extractScriptPairs(html string) []models.AirportResult {
	var results []models.AirportResult
	for _, m := range scriptPairRe.FindAllStringSubmatch(html, -1) {
		results = append(results, models.AirportResult{
			Code: m[1],
			Name: m[2],
		})
	}
	return results
}

// findCity picks the first quoted capitalized phrase in the window that is
// neither the airport name itself nor another airport-like label.
func findCity(window, name string) string {
	for _, m := range cityRe.FindAllStringSubmatch(window, -1) {
		c := m[1]
		if c == name || airportKeywordRe.MatchString(c) {
			continue
		}
		return c
	}
	return ""
}

func findCountry(window string) string {
	if m := countryRe.FindStringSubmatch(window); m != nil {
		return m[1]
	}
	return ""
}
