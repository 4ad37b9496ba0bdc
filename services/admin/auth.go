package admin

import (
	"errors"
	"time"

	"morisbiz/config"
	"morisbiz/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure. The cause is
// deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid admin credentials")

const adminTokenTTL = 24 * time.Hour

// Authenticate checks the supplied credentials against the configured admin
// account and mints a session token.
func (s *DefaultAdminService) Authenticate(email, password string) (string, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if email != cfg.AdminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateAdminToken("admin", email, adminTokenTTL)
}
