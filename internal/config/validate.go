package config

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// allowedAlgorithms are the HMAC signing algorithms the token service
// accepts. The deployed value is fixed; it is never negotiated per token.
var allowedAlgorithms = []string{"HS256", "HS384", "HS512"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !slices.Contains(allowedAlgorithms, c.Auth.Algorithm) {
		return fmt.Errorf("auth.algorithm must be one of %v (got %q)", allowedAlgorithms, c.Auth.Algorithm)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port (got %d)", c.Server.Port)
	}

	return nil
}
