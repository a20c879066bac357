package app

import (
	authService "github.com/allisson/formrelay/internal/auth/service"
)

// TokenHasher returns the Argon2id admin token hasher.
func (c *Container) TokenHasher() authService.TokenHasher {
	c.tokenHasherInit.Do(func() {
		c.tokenHasher = authService.NewTokenHasher()
	})
	return c.tokenHasher
}

// AdminTokenVerifier returns the verifier guarding the admin endpoints.
func (c *Container) AdminTokenVerifier() authService.AdminTokenVerifier {
	c.adminTokenVerifierInit.Do(func() {
		c.adminTokenVerifier = c.initAdminTokenVerifier()
	})
	return c.adminTokenVerifier
}

// initAdminTokenVerifier creates the verifier and warns when admin endpoints are disabled.
func (c *Container) initAdminTokenVerifier() authService.AdminTokenVerifier {
	verifier := authService.NewAdminTokenVerifier(c.config.AdminToken, c.config.AdminTokenHash, c.TokenHasher())
	if !verifier.Enabled() {
		c.Logger().Warn("no admin token configured, admin endpoints are disabled")
	}
	return verifier
}
