// Package session stores login sessions in Redis. The session carries the
// full account snapshot taken at login; tier or rank changes only take
// effect on the member's next login.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/models"
)

// CookieName is the session cookie set on successful login
const CookieName = "staff_portal_session"

// ErrNotFound indicates the session does not exist or has expired
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Config holds Redis connection configuration
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewConfigFromEnv creates a Redis configuration from the environment
func NewConfigFromEnv() *Config {
	return &Config{
		Addr:     utils.GetEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password: utils.GetEnvOrDefault("REDIS_PASSWORD", ""),
		DB:       0,
		TTL:      12 * time.Hour,
	}
}

// Store is a Redis-backed session store
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates and connects a session store
func NewStore(cfg *Config) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewStoreWithClient(rdb, cfg.TTL), nil
}

// NewStoreWithClient wraps an existing Redis client. Used by tests.
func NewStoreWithClient(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create establishes a session for the given principal and returns its ID
func (s *Store) Create(ctx context.Context, principal *models.Account) (string, error) {
	payload, err := json.Marshal(principal)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session principal: %w", err)
	}

	sessionID := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sessionID, nil
}

// Get resolves a session ID to its stored principal
func (s *Store) Get(ctx context.Context, sessionID string) (*models.Account, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var principal models.Account
	if err := json.Unmarshal(payload, &principal); err != nil {
		return nil, fmt.Errorf("failed to decode session principal: %w", err)
	}
	return &principal, nil
}

// Destroy removes a session. Destroying an absent session is not an error.
func (s *Store) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
