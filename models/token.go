package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes access tokens from refresh tokens. It is stored
// in the "typ" claim so a refresh token cannot be used as a bearer token.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims is the claim set of tokens issued by the sync server.
type TokenClaims struct {
	jwt.RegisteredClaims

	Kind TokenKind `json:"typ"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token ready to be
// sent in the Authorization header. Login is the account the token was
// issued for, taken from the "sub" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	TokenClaims

	SignedString string `json:"-"`

	Login string `json:"-"`
}

// GetLogin extracts the account login from the token's "sub" claim.
func (t *Token) GetLogin() (string, error) {
	login, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting login from token: %w", err)
	}
	if login == "" {
		return "", errors.New("empty subject in token")
	}

	return login, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
