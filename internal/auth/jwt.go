package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad
// signature, wrong algorithm, expired token, or missing subject. The
// caller learns nothing about which check failed.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and verifies signed access tokens. Tokens are
// stateless: there is no revocation list, and logout is a client-side
// discard. The signing method is fixed at construction time.
type JWTManager struct {
	secret    []byte
	issuer    string
	method    *jwt.SigningMethodHMAC
	accessTTL time.Duration
}

// NewJWTManager creates a JWT manager for the given HMAC algorithm
// (HS256, HS384 or HS512). secret must be at least 32 characters.
func NewJWTManager(secret, issuer, algorithm string, accessTTL time.Duration) (*JWTManager, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		method:    method,
		accessTTL: accessTTL,
	}, nil
}

// GenerateAccessToken creates a signed token with the user ID as subject
// and expiry = now + TTL.
func (m *JWTManager) GenerateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(m.method, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token and returns the user ID
// from the subject claim. Any failure yields ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Only the configured HMAC method is accepted; the alg header is
		// never trusted to pick a different one.
		if token.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return 0, ErrInvalidToken
	}

	if claims.Subject == "" {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
