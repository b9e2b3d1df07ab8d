//go:build unit

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/exception"
	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/halalbooking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amount(v float64) *halalbooking.Amount {
	a := halalbooking.Amount(v)
	return &a
}

func TestHotelService_SearchPrices(t *testing.T) {
	type mockField struct {
		client  *MockBookingClient
		catalog *MockHotelCatalog
	}

	searchPricesRequest := func(
		req dto.SearchRequest,
		setupMock func(m mockField),
		want dto.HotelPriceResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				client:  NewMockBookingClient(t),
				catalog: NewMockHotelCatalog(t),
			}
			setupMock(m)

			s := NewHotelService(m.client, m.catalog)

			got, err := s.SearchPrices(context.Background(), req)

			if wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SearchPrices() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	req := dto.SearchRequest{
		HotelID:             227,
		Checkin:             "2025-06-01",
		Checkout:            "2025-06-08",
		Adults:              2,
		Children:            0,
		ChildrenAges:        []int{},
		DiscountPercentage:  10,
		Currency:            "TRY",
		CustomerCountryCode: "TR",
	}

	query := halalbooking.PriceQuery{
		HotelID:             227,
		Checkin:             "2025-06-01",
		Checkout:            "2025-06-08",
		Guests:              []int{2},
		Currency:            "TRY",
		CustomerCountryCode: "TR",
	}

	upstream := halalbooking.PriceResponse{
		Place: halalbooking.Place{ID: 227, Name: "Wome Deluxe Upstream"},
		Groups: []halalbooking.Group{{
			Offers: []halalbooking.Offer{{
				TotalPrice: amount(1000),
				Room:       &halalbooking.Room{Name: "Deluxe", Photos: []string{"img.jpg"}},
				RatePlan:   &halalbooking.RatePlan{MealPlanName: "All Inclusive", CancellationPolicyLabel: "Free"},
			}},
		}},
	}

	wantPrices := func(name string, offers []dto.ProcessedOffer) dto.HotelPriceResponse {
		return dto.HotelPriceResponse{
			Success: true,
			Data: &dto.HotelPrices{
				HotelID:      227,
				HotelName:    name,
				Checkin:      "2025-06-01",
				Checkout:     "2025-06-08",
				Adults:       2,
				Children:     0,
				ChildrenAges: []int{},
				Currency:     "TRY",
				Offers:       offers,
			},
		}
	}

	deluxe := dto.ProcessedOffer{
		RoomName:           "Deluxe",
		MealPlan:           "All Inclusive",
		CancellationPolicy: "Free",
		Image:              "img.jpg",
		OriginalPrice:      1000,
		DiscountedPrice:    900,
		DiscountAmount:     100,
		DiscountPercentage: 10,
		Currency:           "TRY",
	}

	t.Run("success_catalog_name", searchPricesRequest(
		req,
		func(m mockField) {
			m.client.On("GetPrices", mock.Anything, query).Return(upstream, nil)
			m.catalog.On("Lookup", mock.Anything, 227).Return("Wome Deluxe", true)
		},
		wantPrices("Wome Deluxe", []dto.ProcessedOffer{deluxe}),
		nil,
	))

	t.Run("success_upstream_name", searchPricesRequest(
		req,
		func(m mockField) {
			m.client.On("GetPrices", mock.Anything, query).Return(upstream, nil)
			m.catalog.On("Lookup", mock.Anything, 227).Return("", false)
		},
		wantPrices("Wome Deluxe Upstream", []dto.ProcessedOffer{deluxe}),
		nil,
	))

	t.Run("no_offers_is_not_an_error", searchPricesRequest(
		req,
		func(m mockField) {
			m.client.On("GetPrices", mock.Anything, query).Return(halalbooking.PriceResponse{}, nil)
			m.catalog.On("Lookup", mock.Anything, 227).Return("", false)
		},
		wantPrices("Hotel ID: 227", []dto.ProcessedOffer{}),
		nil,
	))

	upstreamErr := exception.Internal("API request failed: 401 Unauthorized", nil)

	t.Run("upstream_failure", searchPricesRequest(
		req,
		func(m mockField) {
			m.client.On("GetPrices", mock.Anything, query).Return(halalbooking.PriceResponse{}, upstreamErr)
		},
		dto.HotelPriceResponse{},
		upstreamErr,
	))
}

func TestHotelService_SearchPrices_GuestEncoding(t *testing.T) {
	client := NewMockBookingClient(t)
	catalog := NewMockHotelCatalog(t)

	client.On("GetPrices", mock.Anything, mock.MatchedBy(func(q halalbooking.PriceQuery) bool {
		return cmp.Equal([]int{2, 4, 9}, q.Guests) && q.Currency == "EUR" && q.CustomerCountryCode == "DE"
	})).Return(halalbooking.PriceResponse{}, nil)
	catalog.On("Lookup", mock.Anything, 8729).Return("The Oba", true)

	s := NewHotelService(client, catalog)

	got, err := s.SearchPrices(context.Background(), dto.SearchRequest{
		HotelID:             8729,
		Checkin:             "2025-07-01",
		Checkout:            "2025-07-05",
		Adults:              2,
		Children:            2,
		ChildrenAges:        []int{4, 9},
		Currency:            "EUR",
		CustomerCountryCode: "DE",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, got.Data.ChildrenAges)
	assert.Equal(t, 2, got.Data.Children)
}

func TestHotelService_GetHotelInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := NewMockBookingClient(t)
		raw := json.RawMessage(`{"data":[{"id":227}]}`)
		client.On("GetContent", mock.Anything, 227).Return(raw, nil)

		got, err := NewHotelService(client, nil).GetHotelInfo(context.Background(), dto.HotelInfoRequest{HotelID: 227})
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.JSONEq(t, string(raw), string(got.Data))
	})

	t.Run("failure", func(t *testing.T) {
		client := NewMockBookingClient(t)
		cause := errors.New("dial tcp: connection refused")
		client.On("GetContent", mock.Anything, 227).Return(nil, cause)

		_, err := NewHotelService(client, nil).GetHotelInfo(context.Background(), dto.HotelInfoRequest{HotelID: 227})
		assert.ErrorIs(t, err, cause)
	})
}

func TestHotelService_ListHotels(t *testing.T) {
	catalog := NewMockHotelCatalog(t)
	hotels := []dto.Hotel{{ID: 227, Name: "Wome Deluxe"}}
	catalog.On("ListHotels", mock.Anything).Return(hotels)

	got, err := NewHotelService(nil, catalog).ListHotels(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(dto.HotelListResponse{Success: true, Data: hotels}, got); diff != "" {
		t.Fatalf("ListHotels() mismatch (-want +got):\n%s", diff)
	}
}
