package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the session cookie. Only the subject
// (user id) is ever trusted from it; the role is re-read from the database
// on every request.
type SessionClaims struct {
	jwt.RegisteredClaims
}

var ErrInvalidSessionToken = errors.New("invalid session token")

// GenerateSessionToken signs a token identifying the user.
func GenerateSessionToken(secret string, userID uint, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates the token and returns the user id it names.
func ParseSessionToken(secret, tokenStr string) (uint, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := t.Claims.(*SessionClaims)
	if !ok || !t.Valid {
		return 0, ErrInvalidSessionToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrInvalidSessionToken
	}
	return uint(userID), nil
}
