package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/flightadmin/config"
	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	sessionTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, sessionTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		sessionTTL: sessionTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached list so the next List observes the
// freshly written state.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// StoreSession registers an issued admin token.
func (c *RedisCache) StoreSession(ctx context.Context, token string) error {
	return c.client.Set(ctx, sessionKey(token), "admin", c.sessionTTL).Err()
}

// SessionValid reports whether the token is a live admin session.
func (c *RedisCache) SessionValid(ctx context.Context, token string) (bool, error) {
	_, err := c.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) DropSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKey(token)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func sessionKey(token string) string {
	return "session:admin:" + token
}
