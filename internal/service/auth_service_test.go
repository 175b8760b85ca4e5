package service

import (
	"context"
	"testing"

	"timo-intelligence-be/internal/config"
	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, password string) IAuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}, logger.Noop{})
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "correct horse",
	}, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	username, err := svc.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	}, "10.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "intruder",
		Password: "correct horse",
	}, "10.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginLockoutAfterFiveFailures(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")
	req := &dto.LoginRequest{Username: "admin", Password: "wrong"}

	for i := 0; i < maxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), req, "10.0.0.2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Even the right password is refused while locked out.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "correct horse",
	}, "10.0.0.2")
	assert.ErrorIs(t, err, ErrAccountLocked)

	// Another address is unaffected.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "correct horse",
	}, "10.0.0.3")
	assert.NoError(t, err)
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	for i := 0; i < maxLoginAttempts-1; i++ {
		svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"}, "10.0.0.4")
	}
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "correct horse"}, "10.0.0.4")
	require.NoError(t, err)

	// Counter was cleared, so a new miss does not lock immediately.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"}, "10.0.0.4")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, "pw")
	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
