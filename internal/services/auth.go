package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/jwt"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

const (
	minUsernameLength = 3
	maxUsernameLength = 32
	maxPasswordLength = 72
)

// CredentialStore defines the account operations used for API logins.
type CredentialStore interface {
	Get(ctx context.Context, id string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	UpdateCredentials(ctx context.Context, id, username, passwordHash string) error
}

// SessionStore defines session persistence.
type SessionStore interface {
	Create(ctx context.Context, s models.Session) error
	GetActive(ctx context.Context, id string, now int64) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionCache caches session id to user id lookups.
type SessionCache interface {
	GetUserID(ctx context.Context, sessionID string) (string, error)
	SetUserID(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// TokenIssuer signs and parses session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID, sessionID string, expiresAt time.Time) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// CooldownReporter reports the claim cooldown left for an account.
type CooldownReporter interface {
	CooldownRemaining(acc *models.Account) time.Duration
}

// AuthService handles API logins and session authentication.
type AuthService struct {
	users    CredentialStore
	sessions SessionStore
	cache    SessionCache
	tokens   TokenIssuer
	cooldown CooldownReporter
	ttl      time.Duration
	options
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(
	users CredentialStore,
	sessions SessionStore,
	cache SessionCache,
	tokens TokenIssuer,
	cooldown CooldownReporter,
	ttl time.Duration,
	opts ...Option,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		cache:    cache,
		tokens:   tokens,
		cooldown: cooldown,
		ttl:      ttl,
		options:  newOptions(opts),
	}
}

// Login checks username and the client side password hash. A wrong pair is
// not an error: the result reports what failed.
func (svc *AuthService) Login(ctx context.Context, username, passwordHash string) (*models.LoginResult, error) {
	if username == "" || passwordHash == "" {
		return &models.LoginResult{}, nil
	}

	acc, err := svc.users.GetByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		logger.Log.Infow("login for unknown username", "username", username)
		return &models.LoginResult{}, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if acc.PasswordHash == nil {
		return &models.LoginResult{}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*acc.PasswordHash), []byte(passwordHash)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return &models.LoginResult{}, nil
	}

	now := svc.now()
	expiresAt := now.Add(svc.ttl)
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    acc.ID,
		CreatedAt: now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := svc.tokens.Generate(ctx, acc.ID, session.ID, expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	if err := svc.sessions.Create(ctx, session); err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return nil, err
	}
	svc.cacheSession(ctx, session.ID, acc.ID, svc.ttl)

	return &models.LoginResult{
		SessionCreated:      true,
		PasswordCorrect:     true,
		UserID:              acc.ID,
		SessionID:           token,
		Balance:             acc.Balance,
		CooldownRemainingMs: svc.cooldown.CooldownRemaining(acc).Milliseconds(),
	}, nil
}

// Authenticate resolves a session token to its user. Every failure is
// reported as models.ErrUnauthorized.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejected session token", "err", err)
		return "", models.ErrUnauthorized
	}
	sessionID := claims.SessionID()

	if svc.cache != nil {
		userID, err := svc.cache.GetUserID(ctx, sessionID)
		if err == nil {
			if userID != claims.UserID {
				return "", models.ErrUnauthorized
			}
			return userID, nil
		}
	}

	now := svc.now()
	session, err := svc.sessions.GetActive(ctx, sessionID, now.Unix())
	if err != nil {
		if !errors.Is(err, models.ErrSessionNotFound) {
			logger.Log.Errorw("failed to load session", "err", err)
		}
		return "", models.ErrUnauthorized
	}
	if session.UserID != claims.UserID {
		return "", models.ErrUnauthorized
	}

	svc.cacheSession(ctx, session.ID, session.UserID, time.Unix(session.ExpiresAt, 0).Sub(now))
	return session.UserID, nil
}

// Logout ends the session the token belongs to.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return models.ErrUnauthorized
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, claims.SessionID()); err != nil {
			logger.Log.Warnw("failed to evict session", "err", err)
		}
	}
	return svc.sessions.Delete(ctx, claims.SessionID())
}

// UpdateAccount sets the API username and password of userID. The password
// hash computed by the client is stored bcrypt hashed.
func (svc *AuthService) UpdateAccount(ctx context.Context, userID, username, passwordHash string) error {
	n := utf8.RuneCountInString(username)
	if n < minUsernameLength || n > maxUsernameLength {
		return fmt.Errorf("%w: username must have %d to %d characters", models.ErrInvalidArgument, minUsernameLength, maxUsernameLength)
	}
	if passwordHash == "" || len(passwordHash) > maxPasswordLength {
		return fmt.Errorf("%w: password must have 1 to %d bytes", models.ErrInvalidArgument, maxPasswordLength)
	}

	if _, err := svc.users.Get(ctx, userID); err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(passwordHash), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.users.UpdateCredentials(ctx, userID, username, string(hashed)); err != nil {
		logger.Log.Errorw("failed to update credentials", "user_id", userID, "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) cacheSession(ctx context.Context, sessionID, userID string, ttl time.Duration) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.SetUserID(ctx, sessionID, userID, ttl); err != nil {
		logger.Log.Warnw("failed to cache session", "err", err)
	}
}
