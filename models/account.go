package models

// Account is a sync-server account. PasswordHash is a bcrypt hash and never
// leaves the server.
type Account struct {
	Login        string `json:"email"`
	UUID         string `json:"uuid"`
	PasswordHash []byte `json:"-"`
}
