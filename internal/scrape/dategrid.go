package scrape

import (
	"time"

	"github.com/dharmasatrya/flightscraper/internal/models"
)

// ParseDateGrid reads the date→price calendar out of the decoded root.
// Entries are [timestamp_millis, price] pairs; short tuples and non-numeric
// members are dropped silently.
func ParseDateGrid(root any) []models.DateGridEntry {
	raw, ok := asList(dig(root, idxGridSection, idxGridList))
	if !ok {
		return nil
	}

	entries := make([]models.DateGridEntry, 0, len(raw))
	for _, entry := range raw {
		pair, ok := asList(entry)
		if !ok || len(pair) < 2 {
			continue
		}
		millis, ok := asNumber(pair[0])
		if !ok {
			continue
		}
		price, ok := asNumber(pair[1])
		if !ok {
			continue
		}
		entries = append(entries, models.DateGridEntry{
			Date:  time.UnixMilli(int64(millis)).UTC().Format("2006-01-02"),
			Price: price,
		})
	}
	return entries
}

// Cheapest returns the minimum-price entry, first occurrence on ties, or
// nil when the grid is empty.
func Cheapest(entries []models.DateGridEntry) *models.DateGridEntry {
	if len(entries) == 0 {
		return nil
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Price < best.Price {
			best = e
		}
	}
	return &best
}
