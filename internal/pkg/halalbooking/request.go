package halalbooking

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PriceQuery is everything the pricing endpoint needs for one hotel.
type PriceQuery struct {
	HotelID             int
	Checkin             string
	Checkout            string
	Guests              []int
	Currency            string
	CustomerCountryCode string
}

// BuildPricesURL returns baseURL/places/{id}/ with the search query. Guests is
// the adult count followed by the child ages, joined into a single groups[] value.
func BuildPricesURL(baseURL, location string, q PriceQuery) string {
	params := url.Values{}
	params.Set("groups[]", joinInts(q.Guests))
	params.Set("location", location)
	params.Set("customer_country_code", q.CustomerCountryCode)
	params.Set("page", "1")
	params.Set("currency", q.Currency)
	params.Set("checkin", q.Checkin)
	params.Set("checkout", q.Checkout)

	return fmt.Sprintf("%s/places/%d/?%s", strings.TrimRight(baseURL, "/"), q.HotelID, params.Encode())
}

// BuildContentURL returns the content lookup URL for a single place.
func BuildContentURL(baseURL string, hotelID int) string {
	params := url.Values{}
	params.Set("place_ids[]", strconv.Itoa(hotelID))

	return fmt.Sprintf("%s/content?%s", strings.TrimRight(baseURL, "/"), params.Encode())
}

// BasicAuth returns the Authorization header value for the partner credentials.
func BasicAuth(partnerCode, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(partnerCode+":"+secretKey))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
