package airports

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dharmasatrya/flightscraper/internal/fetcher"
	"github.com/dharmasatrya/flightscraper/internal/models"
	"github.com/dharmasatrya/flightscraper/internal/query"
)

// Last-resort search anchors. When no extraction strategy matches the
// generic page, a real encoded flight search is issued and the results page
// is mined instead; any busy route works.
const (
	fallbackOrigin      = "JFK"
	fallbackDestination = "LHR"
	fallbackCurrency    = "USD"
)

// Resolver turns free text or partial codes into airport candidates with
// no dedicated lookup endpoint behind it.
type Resolver struct {
	client *fetcher.Client
	locale string
}

func NewResolver(client *fetcher.Client, locale string) *Resolver {
	return &Resolver{client: client, locale: locale}
}

// Find runs the extraction strategies in order against the generic search
// page, stopping at the first that yields candidates; if none do, it falls
// back to a full encoded flight search. Results are deduplicated by code,
// scored against the query and returned in descending relevance.
func (r *Resolver) Find(ctx context.Context, text string) ([]models.AirportResult, error) {
	html, err := r.client.GetFlightsPage(ctx, text, r.locale)
	if err != nil {
		return nil, err
	}

	var found []models.AirportResult
	for _, s := range strategies {
		found = s.extract(html)
		if len(found) > 0 {
			slog.Debug("airport strategy matched", "strategy", s.name, "candidates", len(found))
			break
		}
	}

	if len(found) == 0 {
		found, err = r.searchFallback(ctx, text)
		if err != nil {
			return nil, err
		}
	}

	return rank(dedupe(found), text), nil
}

// searchFallback issues a full flight search, using the query as origin
// when it looks like a code, and runs the primary extraction pattern over
// the results page.
func (r *Resolver) searchFallback(ctx context.Context, text string) ([]models.AirportResult, error) {
	origin := strings.ToUpper(strings.TrimSpace(text))
	if len(origin) != 3 {
		origin = fallbackOrigin
	}

	token, err := query.BuildSearchToken(models.SearchCriteria{
		Origin:        origin,
		Destination:   fallbackDestination,
		DepartureDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		TripType:      models.TripOneWay,
		SeatClass:     models.SeatEconomy,
		Passengers:    models.Passengers{Adults: 1},
	})
	if err != nil {
		return nil, err
	}

	html, err := r.client.GetSearchPage(ctx, token, r.locale, fallbackCurrency)
	if err != nil {
		return nil, err
	}

	slog.Debug("airport resolution fell back to full search", "origin", origin)
	return extractOrdinalPairs(html), nil
}
