package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	issuer        = "seva-core"
	defaultSecret = "seva-core-secret-change-me"
)

var secret = []byte(defaultSecret)

// SetSecret configures the signing secret (call on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Sign issues an HS256 token whose subject is the admin username.
func Sign(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		Subject:   username,
		Issuer:    issuer,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

// Parse validates a token and returns the admin username it was issued to.
func Parse(token string) (string, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &jwtlib.RegisteredClaims{},
		func(*jwtlib.Token) (interface{}, error) { return secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	return parsed.Claims.GetSubject()
}
