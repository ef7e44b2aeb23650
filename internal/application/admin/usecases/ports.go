package usecases

import "github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/auth"

// TokenService issues and verifies admin access tokens.
type TokenService interface {
	Generate(adminID, email string) (string, error)
	Verify(token string) (*auth.Claims, error)
}
