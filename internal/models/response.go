package models

type Showing struct {
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

type SearchResponse struct {
	Query        SearchOptions `json:"query"`
	TotalResults int           `json:"total_results"`
	Showing      Showing       `json:"showing"`
	HasMore      bool          `json:"has_more"`
	NextOffset   *int          `json:"next_offset"`
	Flights      []FlightOffer `json:"flights"`
}

type DateGridResponse struct {
	DateGrid []DateGridEntry `json:"date_grid"`
	Cheapest *DateGridEntry  `json:"cheapest"`
	Currency string          `json:"currency"`
}

type AirportResponse struct {
	Query    string          `json:"query"`
	Airports []AirportResult `json:"airports"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
