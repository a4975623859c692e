package service

import (
	"testing"
	"time"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		&config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, user.Level)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = svc.Register("alice@example.com", "different456", "Alice Again")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("bob@example.com", "password123", "Bob")
	require.NoError(t, err)

	token, user, err := svc.Login("bob@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, user.LastLogin.IsZero())

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, util.TokenTypeSession, claims.TokenType)
}

func TestLoginUniformFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("carol@example.com", "password123", "Carol")
	require.NoError(t, err)

	_, _, err = svc.Login("carol@example.com", "wrongpassword")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	token, err := svc.ForgotPassword("ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("dave@example.com", "oldpassword1", "Dave")
	require.NoError(t, err)

	token, err := svc.ForgotPassword("dave@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.ResetPassword(token, "newpassword1"))

	_, _, err = svc.Login("dave@example.com", "oldpassword1")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("dave@example.com", "newpassword1")
	assert.NoError(t, err)
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("erin@example.com", "password123", "Erin")
	require.NoError(t, err)

	sessionToken, _, err := svc.Login("erin@example.com", "password123")
	require.NoError(t, err)

	err = svc.ResetPassword(sessionToken, "newpassword1")
	assert.ErrorIs(t, err, util.ErrInvalidResetToken)
}

func TestUpdateProfileSkipsEmptyFields(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("frank@example.com", "password123", "Frank")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "", "avatar.png", "")
	require.NoError(t, err)
	assert.Equal(t, "Frank", updated.Name)
	assert.Equal(t, "avatar.png", updated.Avatar)

	updated, err = svc.UpdateProfile(user.ID, "Franklin", "", "Backend engineer")
	require.NoError(t, err)
	assert.Equal(t, "Franklin", updated.Name)
	assert.Equal(t, "avatar.png", updated.Avatar)
	assert.Equal(t, "Backend engineer", updated.Bio)
}
