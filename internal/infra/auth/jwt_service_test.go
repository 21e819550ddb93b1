package auth

import (
	"testing"
	"time"

	"stallbook/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(access, refresh string) *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  access,
			Refresh: refresh,
		},
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(testJWTConfig("", ""))
	assert.Error(t, err)

	_, err = NewJWTService(testJWTConfig("only-access", ""))
	assert.Error(t, err)

	svc, err := NewJWTService(testJWTConfig("access-secret", "refresh-secret"))
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test_access_secret_key_very_long_for_testing", "test_refresh_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	tenantID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, &tenantID, []string{"write", "read"}, false)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	require.NotNil(t, claims.TenantID)
	assert.Equal(t, tenantID, *claims.TenantID)
	assert.Equal(t, []string{"write", "read"}, claims.Roles)
	assert.False(t, claims.IsSuperAdmin)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RefreshTokenCarriesIdentityOnly(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	_, refresh, err := svc.GenerateTokens(userID, nil, []string{"admin"}, false)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Nil(t, claims.TenantID)
	assert.Empty(t, claims.Roles)
	assert.Equal(t, "refresh", claims.Type)
}

func TestJWTService_SuperAdminFlag(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New(), nil, nil, true)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.True(t, claims.IsSuperAdmin)
	assert.Nil(t, claims.TenantID)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	other, err := NewJWTService(testJWTConfig("different-access-secret", "different-refresh-secret"))
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New(), nil, nil, false)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
