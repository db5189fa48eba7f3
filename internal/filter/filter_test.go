package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightscraper/internal/models"
)

func offer(price float64, stops int, best bool) models.FlightOffer {
	return models.FlightOffer{
		Price:  models.Price{Amount: price, Currency: "USD"},
		Stops:  stops,
		IsBest: best,
	}
}

func prices(offers []models.FlightOffer) []float64 {
	out := make([]float64, len(offers))
	for i, o := range offers {
		out[i] = o.Price.Amount
	}
	return out
}

func TestByStops_Nonstop(t *testing.T) {
	offers := []models.FlightOffer{
		offer(100, 0, false),
		offer(80, 1, false),
		offer(120, 0, false),
		offer(60, 2, false),
	}

	filtered := ByStops(offers, "nonstop")
	require.Len(t, filtered, 2)
	for _, o := range filtered {
		assert.Equal(t, 0, o.Stops)
	}
}

func TestByStops_NumericMax(t *testing.T) {
	offers := []models.FlightOffer{
		offer(100, 0, false),
		offer(80, 1, false),
		offer(120, 2, false),
		offer(60, 3, false),
	}

	filtered := ByStops(offers, "2")
	require.Len(t, filtered, 3)
	for _, o := range filtered {
		assert.LessOrEqual(t, o.Stops, 2)
	}
}

func TestByStops_AnyIsNoOp(t *testing.T) {
	offers := []models.FlightOffer{offer(100, 0, false), offer(80, 3, false)}

	assert.Len(t, ByStops(offers, "any"), 2)
	assert.Len(t, ByStops(offers, ""), 2)
}

func TestSort_PriceAscending(t *testing.T) {
	offers := []models.FlightOffer{offer(120, 0, false), offer(95, 0, false)}

	sorted := Sort(offers, "price")
	assert.Equal(t, []float64{95, 120}, prices(sorted))
}

func TestSort_Duration(t *testing.T) {
	offers := []models.FlightOffer{
		{DurationMinutes: 400, Price: models.Price{Amount: 1}},
		{DurationMinutes: 150, Price: models.Price{Amount: 2}},
		{DurationMinutes: 300, Price: models.Price{Amount: 3}},
	}

	sorted := Sort(offers, "duration")
	assert.Equal(t, 150, sorted[0].DurationMinutes)
	assert.Equal(t, 400, sorted[2].DurationMinutes)
}

func TestSort_DepartureLexicographic(t *testing.T) {
	offers := []models.FlightOffer{
		{DepartureTime: "14:05"},
		{DepartureTime: "06:30"},
		{DepartureTime: "09:00"},
	}

	sorted := Sort(offers, "departure")
	assert.Equal(t, "06:30", sorted[0].DepartureTime)
	assert.Equal(t, "09:00", sorted[1].DepartureTime)
	assert.Equal(t, "14:05", sorted[2].DepartureTime)
}

func TestSort_BestFirstThenPrice(t *testing.T) {
	offers := []models.FlightOffer{
		offer(200, 0, false),
		offer(300, 0, true),
		offer(100, 0, false),
		offer(250, 0, true),
	}

	sorted := Sort(offers, "best")

	// Every recommended offer precedes every non-recommended one.
	assert.True(t, sorted[0].IsBest)
	assert.True(t, sorted[1].IsBest)
	assert.False(t, sorted[2].IsBest)
	assert.False(t, sorted[3].IsBest)

	// Ascending price within each group.
	assert.Equal(t, []float64{250, 300, 100, 200}, prices(sorted))
}

func TestSort_IsStable(t *testing.T) {
	a := offer(100, 0, false)
	a.BookingToken = "first"
	b := offer(100, 0, false)
	b.BookingToken = "second"

	sorted := Sort([]models.FlightOffer{a, b}, "price")
	assert.Equal(t, "first", sorted[0].BookingToken)
	assert.Equal(t, "second", sorted[1].BookingToken)
}

func TestPaginate_Slices(t *testing.T) {
	offers := make([]models.FlightOffer, 5)
	for i := range offers {
		offers[i] = offer(float64(i), 0, false)
	}

	page := Paginate(offers, 1, 2)
	assert.Equal(t, 5, page.TotalResults)
	assert.Equal(t, 1, page.Offset)
	assert.Equal(t, 2, page.Count)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextOffset)
	assert.Equal(t, 3, *page.NextOffset)
	assert.Equal(t, []float64{1, 2}, prices(page.Offers))
}

func TestPaginate_LastPage(t *testing.T) {
	offers := make([]models.FlightOffer, 5)

	page := Paginate(offers, 4, 10)
	assert.Equal(t, 1, page.Count)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextOffset)
}

func TestPaginate_OffsetPastEnd(t *testing.T) {
	offers := make([]models.FlightOffer, 3)

	page := Paginate(offers, 10, 5)
	assert.Equal(t, 0, page.Count)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextOffset)
	assert.Empty(t, page.Offers)
}

// Count must always equal max(0, min(maxResults, total-offset)) and
// HasMore must equal offset+count < total.
func TestPaginate_Invariant(t *testing.T) {
	offers := make([]models.FlightOffer, 7)

	for offset := 0; offset <= 9; offset++ {
		for maxResults := 0; maxResults <= 9; maxResults++ {
			page := Paginate(offers, offset, maxResults)

			want := len(offers) - offset
			if maxResults < want {
				want = maxResults
			}
			if want < 0 {
				want = 0
			}
			assert.Equal(t, want, page.Count, "offset=%d max=%d", offset, maxResults)
			assert.Equal(t, offset+page.Count < len(offers), page.HasMore, "offset=%d max=%d", offset, maxResults)
		}
	}
}
