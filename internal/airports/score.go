package airports

import (
	"sort"
	"strings"

	"github.com/dharmasatrya/flightscraper/internal/models"
)

// Relevance weights. The score is internal ranking state only and is
// stripped before results are returned.
const (
	scoreCodeExact     = 100
	scoreCodeSubstring = 50
	scoreCityMatch     = 40
	scoreNameMatch     = 30
	scoreCountryMatch  = 10
)

type scoredAirport struct {
	result models.AirportResult
	score  int
}

func dedupe(results []models.AirportResult) []models.AirportResult {
	seen := make(map[string]bool)
	out := make([]models.AirportResult, 0, len(results))
	for _, r := range results {
		if seen[r.Code] {
			continue
		}
		seen[r.Code] = true
		out = append(out, r)
	}
	return out
}

// rank scores every candidate against the query and orders descending.
// Zero-score candidates are dropped, unless every candidate scored zero —
// then all are returned unscored rather than nothing.
func rank(results []models.AirportResult, queryText string) []models.AirportResult {
	q := strings.ToLower(strings.TrimSpace(queryText))

	scored := make([]scoredAirport, 0, len(results))
	anyPositive := false
	for _, r := range results {
		s := relevance(r, q)
		if s > 0 {
			anyPositive = true
		}
		scored = append(scored, scoredAirport{result: r, score: s})
	}

	if anyPositive {
		kept := scored[:0]
		for _, s := range scored {
			if s.score > 0 {
				kept = append(kept, s)
			}
		}
		scored = kept
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]models.AirportResult, len(scored))
	for i, s := range scored {
		out[i] = s.result
	}
	return out
}

func relevance(r models.AirportResult, q string) int {
	if q == "" {
		return 0
	}

	score := 0
	code := strings.ToLower(r.Code)
	switch {
	case code == q:
		score += scoreCodeExact
	case strings.Contains(code, q) || strings.Contains(q, code):
		score += scoreCodeSubstring
	}
	if strings.Contains(strings.ToLower(r.Name), q) {
		score += scoreNameMatch
	}
	if r.City != "" && strings.Contains(strings.ToLower(r.City), q) {
		score += scoreCityMatch
	}
	if r.Country != "" && strings.Contains(strings.ToLower(r.Country), q) {
		score += scoreCountryMatch
	}
	return score
}
