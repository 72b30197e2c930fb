package auth

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/platform/httpx"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Credentials is a freshly issued bearer token for a user.
type Credentials struct {
	Token     string
	ExpiresAt time.Time
	UserID    int64
}

// Signup registers a new account and issues its first token. The token is
// minted only after the user row is durably persisted.
func (s *Service) Signup(ctx context.Context, email, password string) (*Credentials, error) {
	email = NormalizeEmail(email)
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, err
	}
	return s.issue(user.ID)
}

// Login validates email/password credentials and issues a token. Unknown
// email and wrong password both surface the same generic error.
func (s *Service) Login(ctx context.Context, email, password string) (*Credentials, error) {
	email = NormalizeEmail(email)
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, httpx.ErrInvalidCredentials
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, httpx.ErrInvalidCredentials
	}
	return s.issue(user.ID)
}

// Resolve maps a presented token to the live user record. A valid token whose
// subject no longer exists is rejected: the token alone is not proof of
// current existence.
func (s *Service) Resolve(ctx context.Context, tokenString string) (*User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, httpx.ErrUnauthenticated
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, httpx.ErrUnauthenticated
	}
	return user, nil
}

func (s *Service) issue(userID int64) (*Credentials, error) {
	token, expiresAt, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: token, ExpiresAt: expiresAt, UserID: userID}, nil
}
