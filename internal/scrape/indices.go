package scrape

// Positional indices into the embedded ds:1 payload. The site ships no
// schema for this structure; every position below was reverse-engineered
// from captured pages. When the page layout shifts, this table is the only
// place that needs updating.

// Top-level sections of the decoded root.
const (
	idxOffersSection = 2
	idxOffersList    = 0

	idxGridSection = 5
	idxGridList    = 0
)

// An offer tuple: [details, priceBlock, rankBlock, ...].
const (
	offerDetails    = 0
	offerPriceBlock = 1
	offerRankBlock  = 2
)

// Price lives at offer[offerPriceBlock][priceRow][priceValue]. An offer
// whose price cannot be read here is skipped.
const (
	priceRow   = 0
	priceValue = 1
)

// The details tuple inside an offer.
const (
	detailLegs          = 2
	detailTotalDuration = 9
	detailBookingToken  = 18
)

// A leg tuple inside details[detailLegs].
const (
	legOperatedBy = 2
	legOriginCode = 3
	legOriginName = 4
	legDestName   = 5
	legDestCode   = 6
	legDepTime    = 8
	legArrTime    = 10
	legDuration   = 11
	legLegroomAlt = 14
	legAircraft   = 17
	legDepDate    = 20
	legArrDate    = 21
	legFlightInfo = 22
	legLegroom    = 30
)

// Sub-positions of the leg's flight-info tuple.
const (
	flightInfoCarrierCode = 0
	flightInfoNumber      = 1
	flightInfoAirlineName = 3
)
