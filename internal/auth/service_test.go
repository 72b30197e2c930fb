package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/platform/httpx"
)

type memoryRepo struct {
	users   map[int64]*User
	byEmail map[string]int64
	nextID  int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[int64]*User), byEmail: make(map[string]int64)}
}

func (r *memoryRepo) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	if _, ok := r.byEmail[email]; ok {
		return nil, httpx.ErrDuplicateEmail
	}
	r.nextID++
	user := &User{ID: r.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	r.users[user.ID] = user
	r.byEmail[email] = user.ID
	return user, nil
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return r.users[id], nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return user, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewTokenIssuer("secret", time.Hour, nil))
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	creds, err := svc.Signup(ctx, " A@X.com ", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, creds.Token)
	require.True(t, creds.ExpiresAt.After(time.Now()))

	// The token's subject resolves back to the created user.
	user, err := svc.Resolve(ctx, creds.Token)
	require.NoError(t, err)
	require.Equal(t, creds.UserID, user.ID)
	require.Equal(t, "a@x.com", user.Email)

	// Only the hash is stored, never the password itself.
	require.NotEqual(t, "pw1", user.PasswordHash)
	require.True(t, CheckPassword("pw1", user.PasswordHash))
}

func TestSignupDuplicateEmailLeavesStateUnchanged(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	originalHash := repo.users[1].PasswordHash

	// Case/whitespace variants normalize to the same address.
	_, err = svc.Signup(ctx, " A@X.COM ", "other-password")
	require.ErrorIs(t, err, httpx.ErrDuplicateEmail)

	require.Len(t, repo.users, 1)
	require.Equal(t, originalHash, repo.users[1].PasswordHash)
}

func TestLoginNormalizesEmail(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	first, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	creds, err := svc.Login(ctx, " A@X.com ", "pw1")
	require.NoError(t, err)
	require.Equal(t, first.UserID, creds.UserID)
}

func TestLoginFailsUniformly(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, httpx.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@x.com", "pw1")
	require.ErrorIs(t, err, httpx.ErrInvalidCredentials)
}

func TestResolveRejectsVanishedUser(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	creds, err := svc.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	// Simulate the user being deleted after token issuance.
	delete(repo.users, creds.UserID)
	delete(repo.byEmail, "a@x.com")

	_, err = svc.Resolve(ctx, creds.Token)
	require.ErrorIs(t, err, httpx.ErrUnauthenticated)
}

func TestResolveRejectsInvalidToken(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Resolve(context.Background(), "garbage")
	require.ErrorIs(t, err, httpx.ErrUnauthenticated)
}
