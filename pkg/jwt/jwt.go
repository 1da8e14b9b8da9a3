package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type standardClaims[T any] struct {
	jwt.RegisteredClaims
	Object T `json:"obj,omitempty"`
}

type Engine[T any] struct {
	Expiration time.Duration

	secret  string
	counter int64
}

func NewEngine[T any](secret string, expiration time.Duration) *Engine[T] {
	return &Engine[T]{
		secret:     secret,
		Expiration: expiration,
		counter:    0,
	}
}

func (e *Engine[T]) Generate(sub string, obj T) (string, error) {
	now := time.Now()
	e.counter++
	claims := standardClaims[T]{
		Object: obj,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(e.Expiration)),
			ID:        strconv.Itoa(int(e.counter)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "socialai.dev",
			NotBefore: jwt.NewNumericDate(now),
			Subject:   sub,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(e.secret))
}

func (e *Engine[T]) Verify(token string) (T, error) {
	var claims standardClaims[T]
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(e.secret), nil
	})
	if err != nil {
		return claims.Object, err
	}

	if !parsed.Valid {
		return claims.Object, fmt.Errorf("invalid token")
	}

	return claims.Object, nil
}
