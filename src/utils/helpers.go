package utils

import (
	"os"
	"strconv"
	"time"

	"hms/src/config"
	"hms/src/types"

	"github.com/golang-jwt/jwt/v4"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(email string, userId uint, plan types.Plan) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &types.Claims{
		Email: email,
		Plan:  string(plan),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userId)),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseDate reads a calendar date in the stay-date format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(config.DATE_FORMAT, s)
}
