// Package redisstore persists the schedule cache and predictions in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
)

// Key layout. Both values are whole JSON documents, mirroring the
// write-wholesale contract of the store interface.
const (
	scheduleKey    = "nfl:scheduleCache"
	predictionsKey = "nfl:predictions"
)

// Store is a Redis-backed store.Store implementation.
type Store struct {
	client *redis.Client
}

// New constructs a Store on top of an existing Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// NewFromAddr dials Redis and verifies connectivity before returning.
func NewFromAddr(ctx context.Context, addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(client), nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// LoadSchedule reads the cached schedule; a missing key yields an empty
// schedule.
func (s *Store) LoadSchedule(ctx context.Context) (domain.Schedule, error) {
	schedule := make(domain.Schedule)
	if err := s.loadJSON(ctx, scheduleKey, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveSchedule writes the full schedule document.
func (s *Store) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	return s.saveJSON(ctx, scheduleKey, schedule)
}

// LoadPredictions reads the saved predictions; a missing key yields an
// empty map.
func (s *Store) LoadPredictions(ctx context.Context) (domain.Predictions, error) {
	predictions := make(domain.Predictions)
	if err := s.loadJSON(ctx, predictionsKey, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}

// SavePredictions writes the full predictions document.
func (s *Store) SavePredictions(ctx context.Context, predictions domain.Predictions) error {
	return s.saveJSON(ctx, predictionsKey, predictions)
}

func (s *Store) loadJSON(ctx context.Context, key string, target any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
