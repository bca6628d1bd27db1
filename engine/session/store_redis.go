package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
)

// RedisConfig builds a go-redis client from a single URL.
type RedisConfig struct {
	URL          string `envconfig:"URL" split_words:"true" required:"true"`
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" split_words:"true" default:"3"`
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" split_words:"true" default:"3"`
	DialTimeout  int    `envconfig:"DIAL_TIMEOUT" split_words:"true" default:"5"`
}

func (r *RedisConfig) NewClient(ctx context.Context) (*redis.Client, error) {
	opts, err := redis.ParseURL(r.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(r.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(r.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(r.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// RedisStore persists slot snapshots through a live Redis connection.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       defaultTTL,
	}, nil
}

func (s *RedisStore) Load(ctx context.Context, conversationID string) (*slotsx.Record, error) {
	key, err := s.key(conversationID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var snap slotsx.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal slot snapshot: %w", err)
	}
	return slotsx.FromSnapshot(snap), nil
}

func (s *RedisStore) Save(ctx context.Context, conversationID string, rec *slotsx.Record) error {
	if rec == nil {
		return ErrNilRecord
	}
	key, err := s.key(conversationID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(rec.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal slot snapshot: %w", err)
	}

	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	key, err := s.key(conversationID)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) key(conversationID string) (string, error) {
	if conversationID == "" {
		return "", ErrInvalidConversation
	}
	return s.keyPrefix + conversationID, nil
}
