package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt counter (Redis). A nil throttle
// disables throttling entirely.
type LoginThrottle interface {
	// Allow reports whether another attempt for username is permitted.
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements credential authentication, token resolution and
// password changes. It is the only component that touches raw passwords.
type AuthService struct {
	users    ports.UserRepository
	hasher   *PasswordHasher
	tokens   *TokenService
	throttle LoginThrottle
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *PasswordHasher,
	tokens *TokenService,
	throttle LoginThrottle,
	recorder ports.ActivityRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		recorder: recorder,
		log:      log,
	}
}

// Authenticate verifies username/password and issues a session token. The
// returned user record is sanitized: the password hash is stripped.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// Throttle storage being down must not lock everyone out.
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, allowing attempt")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown username and bad password must look identical.
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("authenticate: %w", err)
	}

	if !user.IsActive {
		return "", nil, domain.ErrUserInactive
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("authenticate: issue token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}
	if s.recorder != nil {
		s.recorder.Record(domain.ActivityEntry{
			UserID:   user.ID,
			UserName: displayName(user),
			Action:   "login",
		})
	}

	user.PasswordHash = ""
	return token, user, nil
}

// Resolve validates a bearer token and re-reads the live user record. The
// token's role claim is never used for authorization: role changes and
// deactivations take effect on the next request, not the next login.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

// ChangePassword verifies the actor's current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, actor *domain.User, current, newPassword string) error {
	// Re-read to get the stored hash; the actor record in context is
	// sanitized on some paths.
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if !s.hasher.Verify(current, user.PasswordHash) {
		return domain.ErrWrongPassword
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if s.recorder != nil {
		s.recorder.Record(domain.ActivityEntry{
			UserID:   user.ID,
			UserName: displayName(user),
			Action:   "change_password",
		})
	}
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func displayName(u *domain.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
