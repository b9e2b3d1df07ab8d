package dto

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/exception"
)

const (
	DefaultCurrency    = "TRY"
	DefaultCountryCode = "TR"

	DateLayout = time.DateOnly
)

var (
	ErrMissingSearchFields = exception.BadRequest("Hotel ID, check-in and check-out dates are required.")
	ErrAdultsRequired      = exception.BadRequest("At least 1 adult is required.")
	ErrChildrenMismatch    = exception.BadRequest("Number of children does not match children ages.")
	ErrCheckoutNotAfter    = exception.BadRequest("Check-out date must be after check-in date.")
	ErrInvalidHotelID      = exception.BadRequest("Hotel ID must be a positive integer.")
)

// SearchRequest is the body of the hotel price search.
type SearchRequest struct {
	HotelID             int     `json:"hotelId" validate:"gt=0"`
	Checkin             string  `json:"checkin" validate:"datetime=2006-01-02"`
	Checkout            string  `json:"checkout" validate:"datetime=2006-01-02"`
	Adults              int     `json:"adults" validate:"gte=1"`
	Children            int     `json:"children" validate:"gte=0"`
	ChildrenAges        []int   `json:"childrenAges" validate:"dive,gte=0,lte=17"`
	DiscountPercentage  float64 `json:"discountPercentage" validate:"gte=0,lte=100"`
	Currency            string  `json:"currency" validate:"oneof=TRY USD EUR"`
	CustomerCountryCode string  `json:"customerCountryCode" validate:"iso3166_1_alpha2"`

	// null entries dropped from childrenAges, still counted against Children
	nullAges int
}

// UnmarshalJSON drops null child ages. The form sends null for an age that
// was never picked.
func (s *SearchRequest) UnmarshalJSON(data []byte) error {
	type searchRequest SearchRequest

	aux := struct {
		*searchRequest
		ChildrenAges []*int `json:"childrenAges"`
	}{searchRequest: (*searchRequest)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.ChildrenAges, s.nullAges = nil, 0
	if aux.ChildrenAges == nil {
		return nil
	}

	s.ChildrenAges = make([]int, 0, len(aux.ChildrenAges))
	for _, age := range aux.ChildrenAges {
		if age == nil {
			s.nullAges++
			continue
		}

		s.ChildrenAges = append(s.ChildrenAges, *age)
	}

	return nil
}

func (s *SearchRequest) Bind(_ *http.Request) error {
	s.ApplyDefaults()

	return s.Validate()
}

// ApplyDefaults fills the optional fields the search form may omit.
func (s *SearchRequest) ApplyDefaults() {
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}

	if s.CustomerCountryCode == "" {
		s.CustomerCountryCode = DefaultCountryCode
	}

	if s.ChildrenAges == nil {
		s.ChildrenAges = []int{}
	}
}

// Validate runs the presence checks first so their messages win over the
// generic translated ones.
func (s *SearchRequest) Validate() error {
	if s.HotelID == 0 || s.Checkin == "" || s.Checkout == "" {
		return ErrMissingSearchFields
	}

	if s.Adults < 1 {
		return ErrAdultsRequired
	}

	if len(s.ChildrenAges)+s.nullAges != s.Children {
		return ErrChildrenMismatch
	}

	if err := ValidateSingleError(s); err != nil {
		return exception.BadRequest(err.Error())
	}

	checkin, _ := time.Parse(DateLayout, s.Checkin)
	checkout, _ := time.Parse(DateLayout, s.Checkout)

	if !checkout.After(checkin) {
		return ErrCheckoutNotAfter
	}

	return nil
}

// Guests returns the upstream room occupancy: adult count followed by child ages.
func (s SearchRequest) Guests() []int {
	guests := make([]int, 0, 1+len(s.ChildrenAges))
	guests = append(guests, s.Adults)

	return append(guests, s.ChildrenAges...)
}

// ProcessedOffer is one priced room offer with the request discount applied.
type ProcessedOffer struct {
	RoomName           string  `json:"roomName"`
	RoomID             int     `json:"roomId"`
	MealPlan           string  `json:"mealPlan"`
	CancellationPolicy string  `json:"cancellationPolicy"`
	Image              string  `json:"image"`
	OriginalPrice      float64 `json:"originalPrice"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	DiscountAmount     float64 `json:"discountAmount"`
	DiscountPercentage float64 `json:"discountPercentage"`
	BaseRate           float64 `json:"baseRate"`
	TaxRate            float64 `json:"taxRate"`
	Currency           string  `json:"currency"`
	Quantity           int     `json:"quantity"`
}

type HotelPrices struct {
	HotelID      int              `json:"hotelId"`
	HotelName    string           `json:"hotelName"`
	Checkin      string           `json:"checkin"`
	Checkout     string           `json:"checkout"`
	Adults       int              `json:"adults"`
	Children     int              `json:"children"`
	ChildrenAges []int            `json:"childrenAges"`
	Currency     string           `json:"currency"`
	Offers       []ProcessedOffer `json:"offers"`
}

// HotelPriceResponse is the success variant of the price search result.
type HotelPriceResponse struct {
	Success bool         `json:"success"`
	Data    *HotelPrices `json:"data,omitempty"`
}

type HotelInfoRequest struct {
	HotelID int `json:"hotelId"`
}

func (h *HotelInfoRequest) Validate() error {
	if h.HotelID <= 0 {
		return ErrInvalidHotelID
	}

	return nil
}

// HotelInfoResponse wraps the upstream content lookup untouched.
type HotelInfoResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type Hotel struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type HotelListResponse struct {
	Success bool    `json:"success"`
	Data    []Hotel `json:"data"`
}
