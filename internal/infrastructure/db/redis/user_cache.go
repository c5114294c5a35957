package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/obrasys/backoffice/internal/core/domain"
)

const userCacheTTL = 5 * time.Minute

// UserCache fronts the access guard's user lookup with a short-lived Redis
// entry per subject id. Key format: guard:user:<id>
//
// The cache is never authoritative: the guard falls back to the store on a
// miss or error, and the user service invalidates entries on every
// role/active mutation.
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var user cachedUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("user cache decode: %w", err)
	}
	return user.toDomain(), nil
}

// Set stores the user under its subject id for userCacheTTL.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(fromDomain(user))
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, userCacheTTL).Err()
}

// Invalidate drops the entry so the next guard lookup hits the store.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return "guard:user:" + id
}

// cachedUser is the wire form. The password hash is deliberately excluded:
// the guard never needs it and Redis should not hold credentials.
type cachedUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

func fromDomain(u *domain.User) cachedUser {
	return cachedUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Active: u.Active}
}

func (u cachedUser) toDomain() *domain.User {
	return &domain.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Active: u.Active}
}
