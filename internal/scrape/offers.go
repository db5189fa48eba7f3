package scrape

import (
	"fmt"
	"log/slog"

	"github.com/dharmasatrya/flightscraper/internal/models"
	"github.com/dharmasatrya/flightscraper/pkg/currency"
)

// ParseOffers maps the positional offer tuples in the decoded root to typed
// flight offers. A single malformed offer or segment never aborts the
// batch: it is skipped with a log line and the rest of the page still
// parses. An empty result is not an error.
func ParseOffers(root any, currencyCode string) []models.FlightOffer {
	raw, ok := asList(dig(root, idxOffersSection, idxOffersList))
	if !ok {
		slog.Debug("no offers section in embedded data")
		return nil
	}

	offers := make([]models.FlightOffer, 0, len(raw))
	for i, entry := range raw {
		offer, err := parseOffer(entry, currencyCode)
		if err != nil {
			slog.Warn("skipping offer", "index", i, "err", err)
			continue
		}
		offers = append(offers, *offer)
	}
	return offers
}

func parseOffer(v any, currencyCode string) (*models.FlightOffer, error) {
	details := at(v, offerDetails)
	if details == nil {
		return nil, fmt.Errorf("missing details tuple")
	}

	amount, ok := asNumber(dig(v, offerPriceBlock, priceRow, priceValue))
	if !ok {
		return nil, fmt.Errorf("missing price")
	}

	segments := parseLegs(at(details, detailLegs))

	stops := len(segments) - 1
	if stops < 0 {
		stops = 0
	}

	duration, ok := asInt(at(details, detailTotalDuration))
	if !ok {
		for _, seg := range segments {
			duration += seg.DurationMinutes
		}
	}

	rank, ok := asInt(dig(v, offerRankBlock, 0))
	isBest := ok && rank == 1

	offer := &models.FlightOffer{
		Price: models.Price{
			Amount:    amount,
			Currency:  currencyCode,
			Formatted: currency.Format(currencyCode, amount),
		},
		IsBest:          isBest,
		DurationMinutes: duration,
		Stops:           stops,
		Segments:        segments,
	}

	if token, ok := asString(at(details, detailBookingToken)); ok {
		offer.BookingToken = token
	}

	if len(segments) > 0 {
		first, last := segments[0], segments[len(segments)-1]
		offer.Airline = first.Airline
		offer.DepartureTime = first.DepartureTime
		offer.DepartureDate = first.DepartureDate
		offer.ArrivalTime = last.ArrivalTime
		offer.ArrivalDate = last.ArrivalDate
	}

	return offer, nil
}

func parseLegs(v any) []models.FlightSegment {
	raw, ok := asList(v)
	if !ok {
		return nil
	}

	segments := make([]models.FlightSegment, 0, len(raw))
	for i, entry := range raw {
		seg, err := parseLeg(entry)
		if err != nil {
			slog.Warn("skipping segment", "index", i, "err", err)
			continue
		}
		segments = append(segments, *seg)
	}
	return segments
}

func parseLeg(v any) (*models.FlightSegment, error) {
	originCode, ok := asString(at(v, legOriginCode))
	if !ok {
		return nil, fmt.Errorf("missing origin code")
	}
	destCode, ok := asString(at(v, legDestCode))
	if !ok {
		return nil, fmt.Errorf("missing destination code")
	}

	depTime, err := clockString(at(v, legDepTime))
	if err != nil {
		return nil, fmt.Errorf("departure time: %w", err)
	}
	arrTime, err := clockString(at(v, legArrTime))
	if err != nil {
		return nil, fmt.Errorf("arrival time: %w", err)
	}
	depDate, err := dateString(at(v, legDepDate))
	if err != nil {
		return nil, fmt.Errorf("departure date: %w", err)
	}
	arrDate, err := dateString(at(v, legArrDate))
	if err != nil {
		return nil, fmt.Errorf("arrival date: %w", err)
	}

	duration, _ := asInt(at(v, legDuration))

	carrier, _ := asString(dig(v, legFlightInfo, flightInfoCarrierCode))
	number, _ := asString(dig(v, legFlightInfo, flightInfoNumber))
	airlineName, _ := asString(dig(v, legFlightInfo, flightInfoAirlineName))

	seg := &models.FlightSegment{
		FlightNumber: carrier + number,
		Airline: models.Airline{
			Code: carrier,
			Name: airlineName,
		},
		Origin: models.Endpoint{
			Airport: originCode,
		},
		Destination: models.Endpoint{
			Airport: destCode,
		},
		DepartureTime:   depTime,
		ArrivalTime:     arrTime,
		DepartureDate:   depDate,
		ArrivalDate:     arrDate,
		DurationMinutes: duration,
	}

	if name, ok := asString(at(v, legOriginName)); ok {
		seg.Origin.Name = name
	}
	if name, ok := asString(at(v, legDestName)); ok {
		seg.Destination.Name = name
	}
	if operated, ok := asString(at(v, legOperatedBy)); ok && operated != "" {
		seg.OperatedBy = &operated
	}
	if aircraft, ok := asString(at(v, legAircraft)); ok && aircraft != "" {
		seg.Aircraft = &aircraft
	}
	// Legroom has moved between two positions across layout revisions;
	// first non-null wins.
	if legroom, ok := asString(at(v, legLegroom)); ok && legroom != "" {
		seg.Legroom = &legroom
	} else if legroom, ok := asString(at(v, legLegroomAlt)); ok && legroom != "" {
		seg.Legroom = &legroom
	}

	return seg, nil
}

// clockString renders an [hour, minute?] tuple as zero-padded HH:MM. A
// missing minute means on the hour.
func clockString(v any) (string, error) {
	hour, ok := asInt(at(v, 0))
	if !ok {
		return "", fmt.Errorf("missing hour")
	}
	minute, ok := asInt(at(v, 1))
	if !ok {
		minute = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// dateString renders a [year, month, day] tuple as YYYY-MM-DD.
func dateString(v any) (string, error) {
	year, ok := asInt(at(v, 0))
	if !ok {
		return "", fmt.Errorf("missing year")
	}
	month, ok := asInt(at(v, 1))
	if !ok {
		return "", fmt.Errorf("missing month")
	}
	day, ok := asInt(at(v, 2))
	if !ok {
		return "", fmt.Errorf("missing day")
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}
