//go:build unit

package service

import (
	"context"

	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

// MockHotelCatalog is a mock type for the HotelCatalog type
type MockHotelCatalog struct {
	mock.Mock
}

// Lookup provides a mock function with given fields: ctx, id
func (_m *MockHotelCatalog) Lookup(ctx context.Context, id int) (string, bool) {
	ret := _m.Called(ctx, id)

	return ret.String(0), ret.Bool(1)
}

// ListHotels provides a mock function with given fields: ctx
func (_m *MockHotelCatalog) ListHotels(ctx context.Context) []dto.Hotel {
	ret := _m.Called(ctx)

	if ret.Get(0) == nil {
		return nil
	}

	return ret.Get(0).([]dto.Hotel)
}

// NewMockHotelCatalog creates a new instance of MockHotelCatalog. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHotelCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHotelCatalog {
	m := &MockHotelCatalog{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
