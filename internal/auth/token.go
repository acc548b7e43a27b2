package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AdminName = "Admin"
	AdminRole = "Spy Master"
)

type TokenClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues the bearer value handed out on login. The issued-at
// claim stamps it with the login time; nothing ever checks expiry.
func GenerateToken(secret string) (string, error) {
	claims := &TokenClaims{
		Name: AdminName,
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
