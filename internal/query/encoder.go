package query

import (
	"encoding/base64"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dharmasatrya/flightscraper/internal/models"
)

// The site takes its search criteria as a single opaque `tfs` parameter: a
// protobuf-wire-encoded message, base64url'd without padding. There is no
// published schema; the field numbers below were recovered by decoding
// tokens produced by the site's own front end.
const (
	fieldInfoData       protowire.Number = 3
	fieldInfoPassengers protowire.Number = 8
	fieldInfoSeat       protowire.Number = 9
	fieldInfoTrip       protowire.Number = 19

	fieldLegDate     protowire.Number = 2
	fieldLegMaxStops protowire.Number = 5
	fieldLegFrom     protowire.Number = 13
	fieldLegTo       protowire.Number = 14

	fieldAirportCode protowire.Number = 2
)

const (
	seatEconomy        = 1
	seatPremiumEconomy = 2
	seatBusiness       = 3
	seatFirst          = 4

	tripRoundTrip = 1
	tripOneWay    = 2

	passengerAdult       = 1
	passengerChild       = 2
	passengerInfantSeat  = 3
	passengerInfantOnLap = 4
)

// BuildSearchToken serializes the criteria into the opaque token string the
// site expects. Airport codes are passed through unvalidated; a malformed
// code simply yields an empty or blocked response from the remote site.
func BuildSearchToken(c models.SearchCriteria) (string, error) {
	if c.TripType == models.TripRoundTrip && (c.ReturnDate == nil || *c.ReturnDate == "") {
		return "", models.ErrMissingReturnDate
	}

	var msg []byte

	leg := encodeLeg(c.DepartureDate, c.Origin, c.Destination, c.MaxStops)
	msg = protowire.AppendTag(msg, fieldInfoData, protowire.BytesType)
	msg = protowire.AppendBytes(msg, leg)

	if c.TripType == models.TripRoundTrip {
		ret := encodeLeg(*c.ReturnDate, c.Destination, c.Origin, c.MaxStops)
		msg = protowire.AppendTag(msg, fieldInfoData, protowire.BytesType)
		msg = protowire.AppendBytes(msg, ret)
	}

	for _, tag := range passengerTags(c.Passengers) {
		msg = protowire.AppendTag(msg, fieldInfoPassengers, protowire.VarintType)
		msg = protowire.AppendVarint(msg, tag)
	}

	msg = protowire.AppendTag(msg, fieldInfoSeat, protowire.VarintType)
	msg = protowire.AppendVarint(msg, seatTag(c.SeatClass))

	msg = protowire.AppendTag(msg, fieldInfoTrip, protowire.VarintType)
	msg = protowire.AppendVarint(msg, tripTag(c.TripType))

	return base64.RawURLEncoding.EncodeToString(msg), nil
}

func encodeLeg(date, from, to string, maxStops *int) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldLegDate, protowire.BytesType)
	b = protowire.AppendString(b, date)
	if maxStops != nil {
		b = protowire.AppendTag(b, fieldLegMaxStops, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*maxStops))
	}
	b = appendAirport(b, fieldLegFrom, from)
	b = appendAirport(b, fieldLegTo, to)
	return b
}

func appendAirport(b []byte, num protowire.Number, code string) []byte {
	var inner []byte
	inner = protowire.AppendTag(inner, fieldAirportCode, protowire.BytesType)
	inner = protowire.AppendString(inner, code)
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

// passengerTags expands the counts into the flat tag list the site emits:
// all adults, then children, then infants in seat, then infants on lap.
// Tokens captured from the front end always carry this order; do not
// reorder without re-verifying against live traffic.
func passengerTags(p models.Passengers) []uint64 {
	tags := make([]uint64, 0, p.Total())
	for i := 0; i < p.Adults; i++ {
		tags = append(tags, passengerAdult)
	}
	for i := 0; i < p.Children; i++ {
		tags = append(tags, passengerChild)
	}
	for i := 0; i < p.InfantsInSeat; i++ {
		tags = append(tags, passengerInfantSeat)
	}
	for i := 0; i < p.InfantsOnLap; i++ {
		tags = append(tags, passengerInfantOnLap)
	}
	return tags
}

func seatTag(s models.SeatClass) uint64 {
	switch s {
	case models.SeatPremiumEconomy:
		return seatPremiumEconomy
	case models.SeatBusiness:
		return seatBusiness
	case models.SeatFirst:
		return seatFirst
	default:
		return seatEconomy
	}
}

func tripTag(t models.TripType) uint64 {
	if t == models.TripRoundTrip {
		return tripRoundTrip
	}
	return tripOneWay
}
