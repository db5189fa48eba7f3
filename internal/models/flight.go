package models

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Endpoint struct {
	Airport string `json:"airport"`
	Name    string `json:"name,omitempty"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type FlightSegment struct {
	FlightNumber    string   `json:"flight_number"`
	Airline         Airline  `json:"airline"`
	OperatedBy      *string  `json:"operated_by,omitempty"`
	Aircraft        *string  `json:"aircraft,omitempty"`
	Origin          Endpoint `json:"origin"`
	Destination     Endpoint `json:"destination"`
	DepartureTime   string   `json:"departure_time"`
	ArrivalTime     string   `json:"arrival_time"`
	DepartureDate   string   `json:"departure_date"`
	ArrivalDate     string   `json:"arrival_date"`
	DurationMinutes int      `json:"duration_minutes"`
	Legroom         *string  `json:"legroom,omitempty"`
}

type FlightOffer struct {
	Price           Price           `json:"price"`
	Airline         Airline         `json:"airline"`
	IsBest          bool            `json:"is_best"`
	DepartureTime   string          `json:"departure_time"`
	ArrivalTime     string          `json:"arrival_time"`
	DepartureDate   string          `json:"departure_date"`
	ArrivalDate     string          `json:"arrival_date"`
	DurationMinutes int             `json:"duration_minutes"`
	Stops           int             `json:"stops"`
	Segments        []FlightSegment `json:"segments"`
	BookingToken    string          `json:"booking_token,omitempty"`
}

type DateGridEntry struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type AirportResult struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}
