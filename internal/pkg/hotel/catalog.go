package hotel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/ijalalfrz/hotel-price-query-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

// NamesKey is the Redis hash holding hotel id -> display name overrides.
const NamesKey = "hotel:names"

type RedisClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// Catalog resolves hotel display names from a static list, optionally
// overridden by a Redis hash so names can change without a redeploy.
type Catalog struct {
	hotels []dto.Hotel
	byID   map[int]dto.Hotel
	redis  RedisClient
}

// NewCatalog keeps the first entry for a duplicated id. redis may be nil.
func NewCatalog(hotels []dto.Hotel, redis RedisClient) *Catalog {
	c := &Catalog{
		hotels: make([]dto.Hotel, 0, len(hotels)),
		byID:   make(map[int]dto.Hotel, len(hotels)),
		redis:  redis,
	}

	for _, h := range hotels {
		if _, ok := c.byID[h.ID]; ok {
			continue
		}

		c.byID[h.ID] = h
		c.hotels = append(c.hotels, h)
	}

	return c
}

// Lookup returns the display name for id. Redis errors are logged and the
// static list is used instead.
func (c *Catalog) Lookup(ctx context.Context, id int) (string, bool) {
	if c.redis != nil {
		name, err := c.redis.HGet(ctx, NamesKey, strconv.Itoa(id)).Result()
		switch {
		case err == nil && name != "":
			return name, true
		case err != nil && !errors.Is(err, redis.Nil):
			slog.WarnContext(ctx, "failed to get hotel name from redis",
				slog.Int("hotel_id", id), slog.String("error", err.Error()))
		}
	}

	h, ok := c.byID[id]
	if !ok {
		return "", false
	}

	return h.Name, true
}

// FallbackName is the display name of a hotel nobody knows the name of.
func FallbackName(id int) string {
	return fmt.Sprintf("Hotel ID: %d", id)
}

// ListHotels returns the static list in its configured order, with Redis names
// applied and Redis-only hotels appended by id.
func (c *Catalog) ListHotels(ctx context.Context) []dto.Hotel {
	hotels := make([]dto.Hotel, len(c.hotels))
	copy(hotels, c.hotels)

	if c.redis == nil {
		return hotels
	}

	overrides, err := c.redis.HGetAll(ctx, NamesKey).Result()
	if err != nil {
		slog.WarnContext(ctx, "failed to list hotel names from redis", slog.String("error", err.Error()))
		return hotels
	}

	for i, h := range hotels {
		if name, ok := overrides[strconv.Itoa(h.ID)]; ok && name != "" {
			hotels[i].Name = name
		}
	}

	extra := make([]dto.Hotel, 0)
	for field, name := range overrides {
		id, err := strconv.Atoi(field)
		if err != nil || name == "" {
			continue
		}

		if _, ok := c.byID[id]; !ok {
			extra = append(extra, dto.Hotel{ID: id, Name: name})
		}
	}

	sort.Slice(extra, func(i, j int) bool {
		return extra[i].ID < extra[j].ID
	})

	return append(hotels, extra...)
}
