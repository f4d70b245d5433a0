package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jornadahq/jornada-backend-go/internal/domain/auth"
	"github.com/jornadahq/jornada-backend-go/internal/domain/user"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	byID    map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]user.User),
		byID:    make(map[string]user.User),
	}
}

func (f *fakeUserRepo) add(u user.User) {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.add(u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	found, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	found, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, email, password string, role user.Role) user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := user.User{ID: id, Email: email, PasswordHash: string(hashed), Role: role}
	repo.add(u)
	return u
}

func newTestService(repo *fakeUserRepo) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user-1", "worker@example.com", "password123", user.RoleWorker)
	svc, _ := newTestService(repo)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(user.RoleWorker), resp.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user-1", "worker@example.com", "password123", user.RoleWorker)
	svc, _ := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user-1", "worker@example.com", "password123", user.RoleWorker)
	svc, _ := newTestService(repo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user-1", "worker@example.com", "password123", user.RoleWorker)
	svc, _ := newTestService(repo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user-1", "worker@example.com", "password123", user.RoleWorker)
	svc, _ := newTestService(repo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user-1", "worker@example.com", "password123", user.RoleWorker)
	svc, jwtService := newTestService(repo)

	token, _, err := jwtService.GenerateAccessToken("user-1", "worker@example.com", user.RoleWorker)
	require.NoError(t, err)

	decoded, err := jwtService.JWTAuth().Decode(token)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), decoded, nil)

	resp, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "worker@example.com", resp.Email)
	assert.Equal(t, string(user.RoleWorker), resp.Role)
}
