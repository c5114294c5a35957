package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/obrasys/backoffice/internal/core/domain"
	"github.com/obrasys/backoffice/internal/core/ports"
	"github.com/obrasys/backoffice/pkg/token"
)

// Guard turns a raw bearer credential into an authorization decision. It is
// stateless across requests and performs exactly one user lookup per call,
// optionally served from the cache.
//
// Decision ladder, each rung terminal:
//  1. empty credential          → ErrNotAuthenticated (401)
//  2. codec rejects             → ErrInvalidToken     (401)
//  3. subject not in store      → ErrInvalidToken     (401, indistinguishable from 2)
//  4. inactive client           → ErrAccountPending   (403)
//  5. otherwise                 → the resolved user
type Guard struct {
	codec  *token.Codec
	users  ports.UserRepository
	cache  ports.UserCache
	logger zerolog.Logger
}

// NewGuard builds a Guard. cache may be nil; the store is then hit directly.
func NewGuard(codec *token.Codec, users ports.UserRepository, cache ports.UserCache, logger zerolog.Logger) *Guard {
	return &Guard{codec: codec, users: users, cache: cache, logger: logger}
}

// Resolve implements ports.Guard.
func (g *Guard) Resolve(ctx context.Context, rawToken string) (*domain.User, error) {
	if rawToken == "" {
		return nil, domain.ErrNotAuthenticated
	}

	subject, err := g.codec.Verify(rawToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := g.lookup(ctx, subject)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// A verified token whose subject no longer exists is an
			// authentication failure, not a missing-resource query.
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !user.IsActive() {
		return nil, domain.ErrAccountPending
	}

	return user, nil
}

// lookup resolves the subject, consulting the cache when configured. Cache
// errors are logged and ignored: the store stays authoritative.
func (g *Guard) lookup(ctx context.Context, subject string) (*domain.User, error) {
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, subject); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			g.logger.Debug().Err(err).Str("subject", subject).Msg("guard cache read failed")
		}
	}

	user, err := g.users.FindByID(ctx, subject)
	if err != nil {
		return nil, err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, user); err != nil {
			g.logger.Debug().Err(err).Str("subject", subject).Msg("guard cache write failed")
		}
	}
	return user, nil
}
