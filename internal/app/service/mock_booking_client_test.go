//go:build unit

package service

import (
	"context"
	"encoding/json"

	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/halalbooking"
	"github.com/stretchr/testify/mock"
)

// MockBookingClient is a mock type for the BookingClient type
type MockBookingClient struct {
	mock.Mock
}

// GetPrices provides a mock function with given fields: ctx, query
func (_m *MockBookingClient) GetPrices(ctx context.Context, query halalbooking.PriceQuery) (halalbooking.PriceResponse, error) {
	ret := _m.Called(ctx, query)

	var r0 halalbooking.PriceResponse
	if rf, ok := ret.Get(0).(func(context.Context, halalbooking.PriceQuery) halalbooking.PriceResponse); ok {
		r0 = rf(ctx, query)
	} else {
		r0 = ret.Get(0).(halalbooking.PriceResponse)
	}

	return r0, ret.Error(1)
}

// GetContent provides a mock function with given fields: ctx, hotelID
func (_m *MockBookingClient) GetContent(ctx context.Context, hotelID int) (json.RawMessage, error) {
	ret := _m.Called(ctx, hotelID)

	var r0 json.RawMessage
	if rf, ok := ret.Get(0).(func(context.Context, int) json.RawMessage); ok {
		r0 = rf(ctx, hotelID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(json.RawMessage)
	}

	return r0, ret.Error(1)
}

// NewMockBookingClient creates a new instance of MockBookingClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBookingClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingClient {
	m := &MockBookingClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
