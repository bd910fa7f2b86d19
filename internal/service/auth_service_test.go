package service

import (
	"testing"

	"github.com/TradingIntent/Intentnew/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = config.JWTConfig{Secret: "test-secret", ExpireHours: 1}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTConfig)

	user, err := svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "trader@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	token, err := svc.Login(&LoginRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTConfig)

	_, err := svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTConfig)

	_, err := svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "trader@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTConfig)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTConfig)

	user, err := svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)

	token, err := svc.Login(&LoginRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token.AccessToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestUpdateWallet(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testJWTConfig)

	user, err := svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)

	const address = "4Nd1mYQkT5pyXMvGP3AD8q9v2DsoNRE8ZB2H7R8V8VxT"

	updated, err := svc.UpdateWallet(user.ID, address)
	require.NoError(t, err)
	require.NotNil(t, updated.WalletAddress)
	assert.Equal(t, address, *updated.WalletAddress)
}

func TestUpdateWalletRejectsBadAddress(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTConfig)

	user, err := svc.Register(&RegisterRequest{Email: "trader@example.com", Password: "hunter22"})
	require.NoError(t, err)

	// Too short, and base58 forbids 0, O, I, l
	for _, bad := range []string{"abc", "0OIl000000000000000000000000000000000000"} {
		_, err = svc.UpdateWallet(user.ID, bad)
		assert.ErrorIs(t, err, ErrInvalidWalletAddress)
	}
}

func TestUpdateWalletRejectsTakenAddress(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, testJWTConfig)

	first, err := svc.Register(&RegisterRequest{Email: "one@example.com", Password: "hunter22"})
	require.NoError(t, err)
	second, err := svc.Register(&RegisterRequest{Email: "two@example.com", Password: "hunter22"})
	require.NoError(t, err)

	const address = "4Nd1mYQkT5pyXMvGP3AD8q9v2DsoNRE8ZB2H7R8V8VxT"

	_, err = svc.UpdateWallet(first.ID, address)
	require.NoError(t, err)

	_, err = svc.UpdateWallet(second.ID, address)
	assert.ErrorIs(t, err, ErrWalletTaken)
}
