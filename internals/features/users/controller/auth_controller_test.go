package controller

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchheroes_backend/internals/configs"
	model "churchheroes_backend/internals/features/users/model"
)

func TestSignTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := &model.UserModel{
		UserID:   uuid.New(),
		UserName: "pastor",
		UserRole: "admin",
	}
	signed, err := signToken(user)
	require.NoError(t, err)

	tok, err := jwt.Parse(signed, func(tk *jwt.Token) (interface{}, error) {
		require.Equal(t, jwt.SigningMethodHS256, tk.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.UserID.String(), claims["sub"])
	assert.Equal(t, "pastor", claims["user_name"])
	assert.Equal(t, "admin", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, exp, float64(time.Now().Add(23*time.Hour).Unix()))
}
