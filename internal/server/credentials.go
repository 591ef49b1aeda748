package server

import (
	"crypto/subtle"

	"gameshelf/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an admin login attempt. Injecting it keeps the
// login flow independent of where credentials live.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

type configCredentials struct {
	username     string
	password     string
	passwordHash string
}

// NewConfigVerifier verifies against the configured admin credential pair.
// When a bcrypt hash is configured it takes precedence over the plain
// password.
func NewConfigVerifier(cfg config.Config) CredentialVerifier {
	return &configCredentials{
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
	}
}

func (c *configCredentials) Verify(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) != 1 {
		return false
	}
	if c.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
}
