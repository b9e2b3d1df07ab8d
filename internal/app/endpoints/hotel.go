package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
)

type HotelService interface {
	SearchPrices(ctx context.Context, req dto.SearchRequest) (dto.HotelPriceResponse, error)
	GetHotelInfo(ctx context.Context, req dto.HotelInfoRequest) (dto.HotelInfoResponse, error)
	ListHotels(ctx context.Context) (dto.HotelListResponse, error)
}

type HotelEndpoint struct {
	SearchPrices endpoint.Endpoint
	GetHotelInfo endpoint.Endpoint
	ListHotels   endpoint.Endpoint
}

func MakeHotelEndpoint(service HotelService) HotelEndpoint {
	return HotelEndpoint{
		SearchPrices: makeSearchPricesEndpoint(service),
		GetHotelInfo: makeGetHotelInfoEndpoint(service),
		ListHotels:   makeListHotelsEndpoint(service),
	}
}

func makeSearchPricesEndpoint(service HotelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		prices, err := service.SearchPrices(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("hotel service: %w", err)
		}

		return prices, nil
	}
}

func makeGetHotelInfoEndpoint(service HotelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.HotelInfoRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		info, err := service.GetHotelInfo(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("hotel service: %w", err)
		}

		return info, nil
	}
}

func makeListHotelsEndpoint(service HotelService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		hotels, err := service.ListHotels(ctx)
		if err != nil {
			return nil, fmt.Errorf("hotel service: %w", err)
		}

		return hotels, nil
	}
}
