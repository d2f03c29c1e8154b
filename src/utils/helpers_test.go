package utils

import (
	"testing"

	"hms/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("desk@example.com", 7, types.PLAN_PRO)
	assert.Nil(t, err)

	claims := &types.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "desk@example.com", claims.Email)
	assert.Equal(t, "pro", claims.Plan)
	assert.Equal(t, "7", claims.Subject)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	assert.Nil(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = ParseDate("03/01/2026")
	assert.NotNil(t, err)
}
