//go:build unit

package hotel

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockRedisClient is a mock type for the RedisClient type
type MockRedisClient struct {
	mock.Mock
}

// HGet provides a mock function with given fields: ctx, key, field
func (_m *MockRedisClient) HGet(ctx context.Context, key string, field string) *redis.StringCmd {
	ret := _m.Called(ctx, key, field)

	if rf, ok := ret.Get(0).(func(context.Context, string, string) *redis.StringCmd); ok {
		return rf(ctx, key, field)
	}

	if ret.Get(0) == nil {
		return nil
	}

	return ret.Get(0).(*redis.StringCmd)
}

// HGetAll provides a mock function with given fields: ctx, key
func (_m *MockRedisClient) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	ret := _m.Called(ctx, key)

	if rf, ok := ret.Get(0).(func(context.Context, string) *redis.MapStringStringCmd); ok {
		return rf(ctx, key)
	}

	if ret.Get(0) == nil {
		return nil
	}

	return ret.Get(0).(*redis.MapStringStringCmd)
}

// NewMockRedisClient creates a new instance of MockRedisClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRedisClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRedisClient {
	m := &MockRedisClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
