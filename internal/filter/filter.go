package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dharmasatrya/flightscraper/internal/models"
)

// ByStops filters offers by the requested stop count: "any" is a no-op,
// "nonstop" keeps direct flights only, a numeric string N keeps offers with
// at most N stops. An unparsable value falls back to no filtering;
// validation upstream rejects it before it gets here.
func ByStops(offers []models.FlightOffer, stops string) []models.FlightOffer {
	var maxStops int
	switch strings.ToLower(stops) {
	case "", models.StopsAny:
		return offers
	case models.StopsNonstop:
		maxStops = 0
	default:
		n, err := strconv.Atoi(stops)
		if err != nil {
			return offers
		}
		maxStops = n
	}

	result := make([]models.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if o.Stops <= maxStops {
			result = append(result, o)
		}
	}
	return result
}

// Sort orders offers by the requested key. The sort is stable so offers
// that compare equal keep their parsed order, which keeps identical inputs
// producing identical output.
func Sort(offers []models.FlightOffer, sortBy string) []models.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	switch strings.ToLower(sortBy) {
	case "price":
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Price.Amount < offers[j].Price.Amount
		})

	case "duration":
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DurationMinutes < offers[j].DurationMinutes
		})

	case "departure":
		// Zero-padded HH:MM compares correctly as a string.
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DepartureTime < offers[j].DepartureTime
		})

	case "arrival":
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].ArrivalTime < offers[j].ArrivalTime
		})

	default:
		// "best": recommended offers first, ascending price within each group.
		sort.SliceStable(offers, func(i, j int) bool {
			if offers[i].IsBest != offers[j].IsBest {
				return offers[i].IsBest
			}
			return offers[i].Price.Amount < offers[j].Price.Amount
		})
	}

	return offers
}

// Page is one slice of the filtered-and-sorted offer list plus the
// bookkeeping the response envelope reports.
type Page struct {
	Offers       []models.FlightOffer
	TotalResults int
	Offset       int
	Count        int
	HasMore      bool
	NextOffset   *int
}

// Paginate slices offers by offset/maxResults. TotalResults is the
// post-filter, pre-slice count.
func Paginate(offers []models.FlightOffer, offset, maxResults int) Page {
	total := len(offers)
	if offset < 0 {
		offset = 0
	}
	if maxResults < 0 {
		maxResults = 0
	}

	start := offset
	if start > total {
		start = total
	}
	end := start + maxResults
	if end > total {
		end = total
	}

	page := Page{
		Offers:       offers[start:end],
		TotalResults: total,
		Offset:       offset,
		Count:        end - start,
	}
	page.HasMore = offset+page.Count < total
	if page.HasMore {
		next := offset + page.Count
		page.NextOffset = &next
	}
	return page
}
