package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightscraper/internal/airports"
	"github.com/dharmasatrya/flightscraper/internal/fetcher"
	"github.com/dharmasatrya/flightscraper/internal/handler"
	"github.com/dharmasatrya/flightscraper/internal/models"
	"github.com/dharmasatrya/flightscraper/internal/ratelimit"
	"github.com/dharmasatrya/flightscraper/internal/search"
)

func newHandler(upstreamURL string) *handler.SearchHandler {
	client := fetcher.NewWithBaseURL(ratelimit.New(time.Millisecond), upstreamURL)
	return handler.New(search.New(client, "en"), airports.NewResolver(client, "en"), "USD")
}

func doJSON(t *testing.T, fn echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))
	return rec
}

func TestHealthHandler(t *testing.T) {
	rec := doJSON(t, handler.HealthHandler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearch_MissingOrigin(t *testing.T) {
	h := newHandler("http://unused")
	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/flights/search", `{"destination":"JFK"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
}

func TestSearch_BlockedUpstreamIs429(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Our systems have detected unusual traffic"))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/flights/search",
		`{"origin":"SFO","destination":"JFK","departure_date":"2026-09-14"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "blocked", resp.Error)
}

func TestSearch_ParseFailureIs502(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>unexpected layout</html>"))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/flights/search",
		`{"origin":"SFO","destination":"JFK","departure_date":"2026-09-14"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "parse_error", resp.Error)
}

func TestSearch_UpstreamStatusIs502(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/flights/search",
		`{"origin":"SFO","destination":"JFK","departure_date":"2026-09-14"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_error", resp.Error)
}

func TestAirports_MissingQuery(t *testing.T) {
	h := newHandler("http://unused")
	rec := doJSON(t, h.Airports, http.MethodGet, "/api/v1/airports", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAirports_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[["SFO",0],"San Francisco International Airport","San Francisco","US"]`))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	rec := doJSON(t, h.Airports, http.MethodGet, "/api/v1/airports?q=SFO", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AirportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SFO", resp.Query)
	require.Len(t, resp.Airports, 1)
	assert.Equal(t, "SFO", resp.Airports[0].Code)
	assert.Equal(t, "San Francisco", resp.Airports[0].City)
}

func TestDateGrid_MissingRoute(t *testing.T) {
	h := newHandler("http://unused")
	rec := doJSON(t, h.DateGrid, http.MethodPost, "/api/v1/flights/dategrid", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
