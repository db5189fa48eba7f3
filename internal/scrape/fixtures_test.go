package scrape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// padded builds a tuple of the given size with values pinned at specific
// positions, mirroring the positional shape of the embedded payload.
func padded(size int, values map[int]any) []any {
	list := make([]any, size)
	for idx, v := range values {
		list[idx] = v
	}
	return list
}

// jsonRound pushes a fixture through encoding/json so numbers arrive as
// float64, exactly as they do from a real page.
func jsonRound(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func testLeg(overrides map[int]any) []any {
	values := map[int]any{
		legOperatedBy: "SkyWest Airlines",
		legOriginCode: "SFO",
		legOriginName: "San Francisco International Airport",
		legDestName:   "John F. Kennedy International Airport",
		legDestCode:   "JFK",
		legDepTime:    []any{8, 15},
		legArrTime:    []any{16, 45},
		legDuration:   330,
		legAircraft:   "Boeing 777",
		legDepDate:    []any{2026, 9, 14},
		legArrDate:    []any{2026, 9, 14},
		legFlightInfo: []any{"UA", "523", nil, "United"},
		legLegroom:    "31 in",
	}
	for idx, v := range overrides {
		values[idx] = v
	}
	return padded(31, values)
}

func testOffer(price any, best bool, legs []any) []any {
	details := padded(19, map[int]any{
		detailLegs:          legs,
		detailTotalDuration: 330,
		detailBookingToken:  "tok-abc123",
	})
	rank := 0
	if best {
		rank = 1
	}
	return padded(3, map[int]any{
		offerDetails:    details,
		offerPriceBlock: []any{[]any{nil, price}},
		offerRankBlock:  []any{rank},
	})
}

func testRoot(t *testing.T, offers ...[]any) any {
	list := make([]any, len(offers))
	for i, o := range offers {
		list[i] = o
	}
	root := padded(6, map[int]any{
		idxOffersSection: []any{list},
	})
	return jsonRound(t, root)
}

func testGridRoot(t *testing.T, entries []any) any {
	root := padded(6, map[int]any{
		idxGridSection: []any{entries},
	})
	return jsonRound(t, root)
}
