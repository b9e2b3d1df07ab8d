package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/halalbooking"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/hotel"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/offer"
)

type BookingClient interface {
	GetPrices(ctx context.Context, query halalbooking.PriceQuery) (halalbooking.PriceResponse, error)
	GetContent(ctx context.Context, hotelID int) (json.RawMessage, error)
}

type HotelCatalog interface {
	Lookup(ctx context.Context, id int) (string, bool)
	ListHotels(ctx context.Context) []dto.Hotel
}

type HotelService struct {
	Client  BookingClient
	Catalog HotelCatalog
}

func NewHotelService(client BookingClient, catalog HotelCatalog) *HotelService {
	return &HotelService{
		Client:  client,
		Catalog: catalog,
	}
}

// SearchPrices godoc
// @Summary      Search hotel prices
// @Tags         Hotels
// @Description  Fetch room offers for a hotel and apply a discount percentage
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {object}  dto.HotelPriceResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      405      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/hotel-prices [post]
func (s *HotelService) SearchPrices(
	ctx context.Context,
	req dto.SearchRequest,
) (dto.HotelPriceResponse, error) {
	slog.InfoContext(ctx, "searching hotel prices",
		slog.Int("hotel_id", req.HotelID),
		slog.String("checkin", req.Checkin),
		slog.String("checkout", req.Checkout),
		slog.Int("adults", req.Adults),
		slog.Int("children", req.Children),
		slog.Any("children_ages", req.ChildrenAges),
		slog.Float64("discount_percentage", req.DiscountPercentage),
		slog.String("currency", req.Currency),
	)

	prices, err := s.Client.GetPrices(ctx, halalbooking.PriceQuery{
		HotelID:             req.HotelID,
		Checkin:             req.Checkin,
		Checkout:            req.Checkout,
		Guests:              req.Guests(),
		Currency:            req.Currency,
		CustomerCountryCode: req.CustomerCountryCode,
	})
	if err != nil {
		return dto.HotelPriceResponse{}, fmt.Errorf("failed to get hotel prices: %w", err)
	}

	offers := offer.ProcessOffers(prices.Groups, req.DiscountPercentage, req.Currency)

	slog.InfoContext(ctx, "hotel prices processed",
		slog.Int("hotel_id", req.HotelID),
		slog.Int("total_offers", len(offers)))

	return dto.HotelPriceResponse{
		Success: true,
		Data: &dto.HotelPrices{
			HotelID:      req.HotelID,
			HotelName:    s.hotelName(ctx, req.HotelID, prices.Place),
			Checkin:      req.Checkin,
			Checkout:     req.Checkout,
			Adults:       req.Adults,
			Children:     req.Children,
			ChildrenAges: req.ChildrenAges,
			Currency:     req.Currency,
			Offers:       offers,
		},
	}, nil
}

// GetHotelInfo godoc
// @Summary      Hotel content
// @Tags         Hotels
// @Description  Proxy the booking API content lookup for a single hotel
// @Param        hotelId  path      int  true  "Hotel ID"
// @Success      200      {object}  dto.HotelInfoResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/hotel-info/{hotelId} [get]
func (s *HotelService) GetHotelInfo(
	ctx context.Context,
	req dto.HotelInfoRequest,
) (dto.HotelInfoResponse, error) {
	content, err := s.Client.GetContent(ctx, req.HotelID)
	if err != nil {
		return dto.HotelInfoResponse{}, fmt.Errorf("failed to get hotel info: %w", err)
	}

	return dto.HotelInfoResponse{
		Success: true,
		Data:    content,
	}, nil
}

// ListHotels godoc
// @Summary      List hotels
// @Tags         Hotels
// @Description  Hotels available in the search form
// @Success      200      {object}  dto.HotelListResponse
// @Router       /api/v1/hotels [get]
func (s *HotelService) ListHotels(ctx context.Context) (dto.HotelListResponse, error) {
	return dto.HotelListResponse{
		Success: true,
		Data:    s.Catalog.ListHotels(ctx),
	}, nil
}

// catalog name first, then the name the booking API returned
func (s *HotelService) hotelName(ctx context.Context, id int, place halalbooking.Place) string {
	if name, ok := s.Catalog.Lookup(ctx, id); ok {
		return name
	}

	if place.Name != "" {
		return place.Name
	}

	return hotel.FallbackName(id)
}
