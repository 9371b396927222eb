package models

// LoginRequest is the body of POST /user/login and POST /user/register.
type LoginRequest struct {
	Login    string `json:"email"`
	Password string `json:"password"`
	Scope    string `json:"scope,omitempty"`
}

// RefreshTokenRequest is the body of POST /user/token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
	Scope        string `json:"scope,omitempty"`
}

// TokenResponse is returned by the login, register and token endpoints.
type TokenResponse struct {
	Login        string `json:"email"`
	UUID         string `json:"uuid,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

// Credential is the bearer credential of a signed-in account. The adapter
// receives it on every call and never stores it.
type Credential struct {
	Login        string
	AccessToken  string
	RefreshToken string
}

// Empty reports whether the credential cannot authenticate a request.
func (c Credential) Empty() bool {
	return c.AccessToken == ""
}

// CredentialFromToken builds a credential from a token response. An empty
// refresh token in the response keeps the previous one.
func CredentialFromToken(resp TokenResponse, prev Credential) Credential {
	cred := Credential{
		Login:        resp.Login,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if cred.Login == "" {
		cred.Login = prev.Login
	}
	if cred.RefreshToken == "" {
		cred.RefreshToken = prev.RefreshToken
	}
	return cred
}
