package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
)

// ActorClaims are the JWT claims carried by the portal token: the standard
// registered claims plus the display name and role the workflow engine
// needs to build the acting user.
type ActorClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a signed actor token for the given user.
func GenerateJWT(user *domain.User, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiryDuration)
	claims := ActorClaims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a token string, validates its signature and
// standard claims, and returns the actor claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*ActorClaims, error) {
	claims := &ActorClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
