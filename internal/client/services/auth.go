package services

import (
	"context"
	"errors"

	"github.com/slicedsoap/wolfnotes/internal/client/cache"
	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/logging"
)

// ErrNoCachedProfile means the device is offline and has never completed a
// successful profile fetch, so there is nothing to show.
var ErrNoCachedProfile = errors.New("no cached profile")

// AuthService handles session and profile operations.
type AuthService struct {
	client gateway.Client
	cache  *cache.Cache
	log    logging.Logger
}

func NewAuthService(client gateway.Client, c *cache.Cache, log logging.Logger) *AuthService {
	return &AuthService{client: client, cache: c, log: log.With("component", "auth")}
}

// Login authenticates against the server and caches the profile wholesale.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if cerr := s.cache.Profile.Save(ctx, u); cerr != nil {
		s.log.Warn(ctx, "profile cache write failed", "err", cerr)
	}
	return u, nil
}

// Register creates an account. Online-only.
func (s *AuthService) Register(ctx context.Context, reg gateway.Registration) error {
	return s.client.Register(ctx, reg)
}

// Logout ends the server session. Cached data stays on the device so reads
// keep working offline afterwards.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Logout(ctx)
}

// Current returns the signed-in profile: verified live against the server
// when reachable (refreshing the cache), otherwise the cached copy. With no
// network and no cached profile it returns ErrNoCachedProfile.
func (s *AuthService) Current(ctx context.Context) (Result[*models.User], error) {
	u, err := s.client.Verify(ctx)
	if err == nil {
		if cerr := s.cache.Profile.Save(ctx, u); cerr != nil {
			s.log.Warn(ctx, "profile cache write failed", "err", cerr)
		}
		return live(u), nil
	}
	if !errors.Is(err, gateway.ErrNetworkUnreachable) {
		return Result[*models.User]{}, err
	}

	cached, cerr := s.cache.Profile.Get(ctx)
	if cerr != nil {
		return Result[*models.User]{}, ErrNoCachedProfile
	}
	return fromCache(cached), nil
}

// Ping probes server reachability for the connectivity watcher. Any response
// that made it back over the wire counts as online, 401 included.
func (s *AuthService) Ping(ctx context.Context) error {
	_, err := s.client.Verify(ctx)
	if err == nil || errors.Is(err, gateway.ErrUnauthorized) {
		return nil
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return nil
	}
	return err
}
