package services

import (
	"testing"
	"time"

	"hoteldesk/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 42, Role: 1}, 60, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	staffID, role, err := GetStaffFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), staffID)
	assert.Equal(t, 1, role)
}

func TestGenerateRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 7, Role: 0}, 60*24, false)
	require.NoError(t, err)

	staffID, err := GetStaffIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), staffID)
}

func TestGetStaffFromTokenMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
	}
	for _, tokenString := range cases {
		_, _, err := GetStaffFromToken(tokenString)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidToken, appErr.Code)
	}
}

func TestGetStaffFromTokenMissingUserInfo(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)

	_, _, err = GetStaffFromToken(token)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidToken, appErr.Code)
}
