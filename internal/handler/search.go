package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightscraper/internal/airports"
	"github.com/dharmasatrya/flightscraper/internal/fetcher"
	"github.com/dharmasatrya/flightscraper/internal/models"
	"github.com/dharmasatrya/flightscraper/internal/scrape"
	"github.com/dharmasatrya/flightscraper/internal/search"
)

type SearchHandler struct {
	search          *search.Service
	airports        *airports.Resolver
	defaultCurrency string
}

func New(svc *search.Service, resolver *airports.Resolver, defaultCurrency string) *SearchHandler {
	return &SearchHandler{
		search:          svc,
		airports:        resolver,
		defaultCurrency: defaultCurrency,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	var opts models.SearchOptions
	if err := c.Bind(&opts); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	if opts.Currency == "" {
		opts.Currency = h.defaultCurrency
	}

	resp, err := h.search.Search(c.Request().Context(), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) DateGrid(c echo.Context) error {
	var opts models.DateGridOptions
	if err := c.Bind(&opts); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	if opts.Currency == "" {
		opts.Currency = h.defaultCurrency
	}

	resp, err := h.search.DateGrid(c.Request().Context(), opts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) Airports(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "q is required",
			Code:    http.StatusBadRequest,
		})
	}

	results, err := h.airports.Find(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, models.AirportResponse{
		Query:    q,
		Airports: results,
	})
}

// writeError maps the typed errors of the scraping core onto the JSON error
// envelope. Blocked requests surface as 429 so callers know to back off;
// upstream and parse failures as 502.
func writeError(c echo.Context, err error) error {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	var blockedErr *fetcher.BlockedError
	if errors.As(err, &blockedErr) {
		return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "blocked",
			Message: blockedErr.Error(),
			Code:    http.StatusTooManyRequests,
		})
	}

	var fetchErr *fetcher.FetchError
	if errors.As(err, &fetchErr) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: fetchErr.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	var parseErr *scrape.ParseError
	if errors.As(err, &parseErr) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "parse_error",
			Message: parseErr.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "search_error",
		Message: "Failed to search flights: " + err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
