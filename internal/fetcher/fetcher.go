package fetcher

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dharmasatrya/flightscraper/internal/ratelimit"
)

const (
	defaultBaseURL = "https://www.google.com"

	searchPath  = "/travel/flights/search"
	flightsPath = "/travel/flights"

	// Fixed technical constant carried by every front-end search request.
	tfuParam = "EgQIABABIgA"
)

// Header set mimicking a common desktop browser. The consent cookie keeps
// the site from answering with a consent interstitial instead of results.
const (
	headerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	headerAccept    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	headerLanguage  = "en-US,en;q=0.9"
	headerEncoding  = "gzip"
	consentCookie   = "CONSENT=YES+cb.20230101-17-p0.en+FX+667; SOCS=CAESHAgBEhJnd3NfMjAyMzAxMTctMF9SQzIaAmVuIAEaBgiAo4yhBg"
)

// Substrings that identify a bot-block page. Checked on every body so a
// blocked call surfaces as BlockedError instead of a confusing parse
// failure.
var botBlockMarkers = []string{
	"Our systems have detected unusual traffic",
	"not a robot",
	"/sorry/index",
}

// Client is the single rate-limited HTTP GET primitive shared by the
// search, date-grid and airport-resolution paths. It carries no timeout of
// its own; callers bound the whole operation through ctx.
type Client struct {
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	baseURL    string
}

func New(limiter *ratelimit.Limiter) *Client {
	return NewWithBaseURL(limiter, defaultBaseURL)
}

// NewWithBaseURL points the client at a custom host (used in tests).
func NewWithBaseURL(limiter *ratelimit.Limiter, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		limiter:    limiter,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Get waits for the rate limiter, then issues a browser-shaped GET and
// returns the decoded body.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	rawURL := c.baseURL + path
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", headerUserAgent)
	req.Header.Set("Accept", headerAccept)
	req.Header.Set("Accept-Language", headerLanguage)
	req.Header.Set("Accept-Encoding", headerEncoding)
	req.Header.Set("Cookie", consentCookie)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		reader = gz
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	body := string(raw)

	for _, marker := range botBlockMarkers {
		if strings.Contains(body, marker) {
			return "", &BlockedError{Marker: marker}
		}
	}

	return body, nil
}

// GetSearchPage fetches the results page for an encoded search token.
func (c *Client) GetSearchPage(ctx context.Context, token, locale, currency string) (string, error) {
	params := url.Values{}
	params.Set("tfs", token)
	params.Set("hl", locale)
	params.Set("tfu", tfuParam)
	params.Set("curr", currency)
	return c.Get(ctx, searchPath, params)
}

// GetFlightsPage fetches the generic flights page for a free-text query,
// used by the airport-resolution strategies.
func (c *Client) GetFlightsPage(ctx context.Context, text, locale string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("hl", locale)
	return c.Get(ctx, flightsPath, params)
}
