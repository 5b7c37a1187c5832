package auth

import (
	"context"
	"testing"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/auth"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/user"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestAuthService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	employeeID := "e1"
	repo := &fakeUserRepo{
		users: map[string]user.User{
			"admin@example.com": {
				ID:           "u1",
				Email:        "admin@example.com",
				PasswordHash: string(hash),
				FullName:     "Pat Admin",
				IsAdmin:      true,
			},
			"worker@example.com": {
				ID:           "u2",
				Email:        "worker@example.com",
				PasswordHash: string(hash),
				FullName:     "Sam Worker",
				EmployeeID:   &employeeID,
			},
		},
	}

	return NewAuthService(repo, jwt.NewJWTService("test-secret-key", "1h"))
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotZero(t, resp.AccessTokenExpiresAt)
	assert.True(t, resp.IsAdmin)
}

func TestLoginNonAdmin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Me(context.Background(), "u2")
	require.NoError(t, err)

	assert.Equal(t, "u2", resp.ID)
	assert.Equal(t, "worker@example.com", resp.Email)
	assert.Equal(t, "Sam Worker", resp.FullName)
	assert.False(t, resp.IsAdmin)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, "e1", *resp.EmployeeID)
}

func TestMeUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestLoginValidation(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "", Password: ""})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}
