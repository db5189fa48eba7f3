package fetcher

import "fmt"

// FetchError is returned for any non-2xx response. It is fatal for the
// call; no retries are attempted here.
type FetchError struct {
	StatusCode int
	URL        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// BlockedError is returned when the response body is an anti-automation
// interstitial rather than real results.
type BlockedError struct {
	Marker string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked by anti-automation check (matched %q); wait before retrying", e.Marker)
}
