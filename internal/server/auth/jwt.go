// Package auth issues and validates the access tokens handed out by the
// identity service. Tokens are HS256 JWTs carrying the user id and the
// user's role claims.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered claim set with the subject's id and roles.
// The roles claim is what the client's authorization layer is built on.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"uid"`
	Roles  []string `json:"roles"`
}

// GenerateToken signs a token for userID with the given roles and validity.
func GenerateToken(userID string, roles []string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Roles:  roles,
	})

	return token.SignedString(secretKey)
}

// ParseToken validates tokenString and returns its claims. Expired tokens
// yield common.ErrTokenExpired so the transport can trigger a refresh; any
// other validation failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
