package offer

import (
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/halalbooking"
)

const (
	UnknownRoom     = "Unknown room"
	UnknownMealPlan = "Unknown"
	UnknownPolicy   = "Unknown"
)

// ProcessOffers flattens the upstream groups into priced offers, keeping group
// order and offer order. The same discount percentage applies to every offer.
func ProcessOffers(groups []halalbooking.Group, discountPercentage float64, currency string) []dto.ProcessedOffer {
	results := make([]dto.ProcessedOffer, 0)

	for _, group := range groups {
		for _, raw := range group.Offers {
			results = append(results, processOffer(raw, discountPercentage, currency))
		}
	}

	return results
}

// ApplyDiscount returns the discounted price and the amount taken off.
func ApplyDiscount(price, discountPercentage float64) (discounted, amount float64) {
	amount = price * discountPercentage / 100

	return price - amount, amount
}

// OriginalPrice picks total_price, then price. A zero total counts as missing.
func OriginalPrice(raw halalbooking.Offer) float64 {
	if total := raw.TotalPrice.Float(); total != 0 {
		return total
	}

	return raw.Price.Float()
}

func processOffer(raw halalbooking.Offer, discountPercentage float64, currency string) dto.ProcessedOffer {
	originalPrice := OriginalPrice(raw)
	discountedPrice, discountAmount := ApplyDiscount(originalPrice, discountPercentage)

	processed := dto.ProcessedOffer{
		RoomName:           UnknownRoom,
		MealPlan:           UnknownMealPlan,
		CancellationPolicy: UnknownPolicy,
		OriginalPrice:      originalPrice,
		DiscountedPrice:    discountedPrice,
		DiscountAmount:     discountAmount,
		DiscountPercentage: discountPercentage,
		BaseRate:           raw.BaseRate.Float(),
		TaxRate:            raw.TaxRate.Float(),
		Currency:           currency,
		Quantity:           raw.Quantity,
	}

	if room := raw.Room; room != nil {
		processed.RoomID = room.ID
		processed.Image = roomImage(room)

		if room.Name != "" {
			processed.RoomName = room.Name
		}
	}

	if plan := raw.RatePlan; plan != nil {
		if plan.MealPlanName != "" {
			processed.MealPlan = plan.MealPlanName
		}

		if plan.CancellationPolicyLabel != "" {
			processed.CancellationPolicy = plan.CancellationPolicyLabel
		}
	}

	return processed
}

// first photo, then the single photo field
func roomImage(room *halalbooking.Room) string {
	if len(room.Photos) > 0 && room.Photos[0] != "" {
		return room.Photos[0]
	}

	return room.Photo
}
