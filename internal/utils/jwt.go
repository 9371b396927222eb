package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pod-sync/models"
)

// ErrWrongTokenKind is returned when a token of one kind is presented where
// the other kind is expected.
var ErrWrongTokenKind = errors.New("wrong token kind")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account login
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - ID        (jti): a random id, so two tokens issued in the same second differ
//   - typ            : access or refresh
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("pod-sync", "alice@example.com", models.TokenKindAccess, time.Hour, "secret")
func GenerateJWTToken(issuer, login string, kind models.TokenKind, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || login == "" || kind == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Kind: kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString, Login: login}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Token kind (typ) check against kind
//   - Subject (sub) claim presence
//
// Expired tokens fail with an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, kind models.TokenKind) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Kind != kind {
		return models.Token{}, fmt.Errorf("%w: got %q, want %q", ErrWrongTokenKind, claims.Kind, kind)
	}

	parsed := models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString}
	if parsed.Login, err = parsed.GetLogin(); err != nil {
		return models.Token{}, err
	}
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiresWithin reports whether tokenString expires before now+skew.
// The signature is not verified: the client only needs the expiry to decide
// when to refresh. An empty token counts as expired; a token that is not a
// JWT or has no exp claim never expires by this check and is refreshed only
// after the server rejects it.
func TokenExpiresWithin(tokenString string, now time.Time, skew time.Duration) bool {
	if tokenString == "" {
		return true
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Add(skew).Before(exp.Time)
}
