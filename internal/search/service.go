package search

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/dharmasatrya/flightscraper/internal/fetcher"
	"github.com/dharmasatrya/flightscraper/internal/filter"
	"github.com/dharmasatrya/flightscraper/internal/models"
	"github.com/dharmasatrya/flightscraper/internal/query"
	"github.com/dharmasatrya/flightscraper/internal/scrape"
)

// Service drives a full search: encode token, fetch the results page,
// extract the embedded payload, parse, then filter/sort/paginate. Nothing
// is cached; every call re-fetches and re-parses from scratch.
type Service struct {
	client *fetcher.Client
	locale string
}

func New(client *fetcher.Client, locale string) *Service {
	return &Service{client: client, locale: locale}
}

func (s *Service) Search(ctx context.Context, opts models.SearchOptions) (*models.SearchResponse, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	criteria := opts.SearchCriteria
	// max_stops stays out of the encoded token: some configurations come
	// back with empty result sets when it is set. It is applied as a
	// post-fetch filter instead.
	criteria.MaxStops = nil

	token, err := query.BuildSearchToken(criteria)
	if err != nil {
		return nil, err
	}

	html, err := s.client.GetSearchPage(ctx, token, s.locale, opts.Currency)
	if err != nil {
		return nil, err
	}

	root, ok := scrape.ExtractEmbeddedData(html)
	if !ok {
		return nil, &scrape.ParseError{Reason: "embedded flight data not found"}
	}

	offers := scrape.ParseOffers(root, opts.Currency)
	slog.Debug("parsed offers", "count", len(offers),
		"origin", opts.Origin, "destination", opts.Destination)

	filtered := filter.ByStops(offers, effectiveStops(opts))
	sorted := filter.Sort(filtered, opts.SortBy)
	page := filter.Paginate(sorted, opts.Offset, opts.MaxResults)

	return &models.SearchResponse{
		Query:        opts,
		TotalResults: page.TotalResults,
		Showing:      models.Showing{Offset: page.Offset, Count: page.Count},
		HasMore:      page.HasMore,
		NextOffset:   page.NextOffset,
		Flights:      page.Offers,
	}, nil
}

func (s *Service) DateGrid(ctx context.Context, opts models.DateGridOptions) (*models.DateGridResponse, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	token, err := query.BuildSearchToken(models.SearchCriteria{
		Origin:        opts.Origin,
		Destination:   opts.Destination,
		DepartureDate: opts.DepartureDate,
		TripType:      models.TripOneWay,
		SeatClass:     models.SeatEconomy,
		Passengers:    models.Passengers{Adults: 1},
	})
	if err != nil {
		return nil, err
	}

	html, err := s.client.GetSearchPage(ctx, token, s.locale, opts.Currency)
	if err != nil {
		return nil, err
	}

	root, ok := scrape.ExtractEmbeddedData(html)
	if !ok {
		return nil, &scrape.ParseError{Reason: "embedded calendar data not found"}
	}

	entries := scrape.ParseDateGrid(root)
	return &models.DateGridResponse{
		DateGrid: entries,
		Cheapest: scrape.Cheapest(entries),
		Currency: opts.Currency,
	}, nil
}

// effectiveStops merges the explicit stops filter with the criteria's
// max_stops; the explicit filter wins when both are set.
func effectiveStops(opts models.SearchOptions) string {
	if opts.Stops != "" && opts.Stops != models.StopsAny {
		return opts.Stops
	}
	if opts.MaxStops != nil {
		return strconv.Itoa(*opts.MaxStops)
	}
	return models.StopsAny
}
