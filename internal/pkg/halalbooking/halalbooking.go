package halalbooking

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// PriceResponse is the body of GET /places/{id}/.
type PriceResponse struct {
	Currency string  `json:"currency"`
	URL      string  `json:"url"`
	Locale   string  `json:"locale"`
	Place    Place   `json:"place"`
	Groups   []Group `json:"groups"`
}

type Place struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stars int    `json:"stars"`
	Photo string `json:"photo"`
}

// Group bundles offers for the same room and rate combination.
type Group struct {
	Group  string  `json:"group"`
	Offers []Offer `json:"offers"`
}

// Offer is a raw upstream offer. Every sub-object may be missing.
type Offer struct {
	Price        *Amount   `json:"price"`
	TotalPrice   *Amount   `json:"total_price"`
	BaseRate     *Amount   `json:"base_rate"`
	TaxRate      *Amount   `json:"tax_rate"`
	Quantity     int       `json:"quantity"`
	Confirmation string    `json:"confirmation"`
	Room         *Room     `json:"room"`
	RatePlan     *RatePlan `json:"rate_plan"`
}

type Room struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Photo  string   `json:"photo"`
	Photos []string `json:"photos"`
}

type RatePlan struct {
	ID                      int    `json:"id"`
	MealPlanName            string `json:"meal_plan_name"`
	CancellationPolicyLabel string `json:"cancellation_policy_label"`
}

// Amount is a money value the upstream sends either as a JSON number or as a
// numeric string.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}

	*a = Amount(value)

	return nil
}

// Float returns 0 for a missing amount.
func (a *Amount) Float() float64 {
	if a == nil {
		return 0
	}

	return float64(*a)
}
