package models

import (
	"strconv"
	"strings"
	"time"
)

type TripType string

const (
	TripRoundTrip TripType = "round_trip"
	TripOneWay    TripType = "one_way"
)

type SeatClass string

const (
	SeatEconomy        SeatClass = "economy"
	SeatPremiumEconomy SeatClass = "premium_economy"
	SeatBusiness       SeatClass = "business"
	SeatFirst          SeatClass = "first"
)

type Passengers struct {
	Adults        int `json:"adults"`
	Children      int `json:"children,omitempty"`
	InfantsInSeat int `json:"infants_in_seat,omitempty"`
	InfantsOnLap  int `json:"infants_on_lap,omitempty"`
}

func (p Passengers) Total() int {
	return p.Adults + p.Children + p.InfantsInSeat + p.InfantsOnLap
}

// SearchCriteria is the structured input to the token encoder. It is built
// fresh per request and never persisted.
type SearchCriteria struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate string     `json:"departure_date"`
	ReturnDate    *string    `json:"return_date,omitempty"`
	TripType      TripType   `json:"trip_type,omitempty"`
	SeatClass     SeatClass  `json:"seat_class,omitempty"`
	Passengers    Passengers `json:"passengers"`
	MaxStops      *int       `json:"max_stops,omitempty"`
}

func (c *SearchCriteria) Validate() error {
	if c.Origin == "" {
		return ErrMissingOrigin
	}
	if c.Destination == "" {
		return ErrMissingDestination
	}
	if c.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if c.Passengers.Total() <= 0 {
		c.Passengers.Adults = 1
	}
	if c.SeatClass == "" {
		c.SeatClass = SeatEconomy
	}
	if c.TripType == "" {
		if c.ReturnDate != nil && *c.ReturnDate != "" {
			c.TripType = TripRoundTrip
		} else {
			c.TripType = TripOneWay
		}
	}
	if c.TripType == TripRoundTrip && (c.ReturnDate == nil || *c.ReturnDate == "") {
		return ErrMissingReturnDate
	}
	return nil
}

// Stop filter values accepted by SearchOptions.Stops; a bare number "N"
// keeps offers with at most N stops.
const (
	StopsAny     = "any"
	StopsNonstop = "nonstop"
)

const DefaultMaxResults = 20

type SearchOptions struct {
	SearchCriteria
	Stops      string `json:"stops,omitempty"`
	SortBy     string `json:"sort_by,omitempty"`
	Offset     int    `json:"offset,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
	Currency   string `json:"currency,omitempty"`
}

func (o *SearchOptions) Validate() error {
	if err := o.SearchCriteria.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(o.Stops) {
	case "", StopsAny:
		o.Stops = StopsAny
	case StopsNonstop:
		o.Stops = StopsNonstop
	default:
		if _, err := strconv.Atoi(o.Stops); err != nil {
			return ErrInvalidStops
		}
	}
	if o.SortBy == "" {
		o.SortBy = "best"
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	return nil
}

type DateGridOptions struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

func (o *DateGridOptions) Validate() error {
	if o.Origin == "" {
		return ErrMissingOrigin
	}
	if o.Destination == "" {
		return ErrMissingDestination
	}
	if o.DepartureDate == "" {
		// Anchor the calendar one week out when no explicit date is given.
		o.DepartureDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrMissingReturnDate    ValidationError = "return_date is required for round trips"
	ErrInvalidStops         ValidationError = "stops must be \"any\", \"nonstop\" or a number"
)
