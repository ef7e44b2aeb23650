package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
)

// currentAdmin returns the admin the auth middleware loaded for this request.
func currentAdmin(c *gin.Context) (*admin.Admin, error) {
	v, ok := c.Get(constants.ContextKeyAdmin)
	if !ok {
		return nil, errors.NewUnauthorizedError("Could not validate credentials")
	}
	a, ok := v.(*admin.Admin)
	if !ok || a == nil {
		return nil, errors.NewUnauthorizedError("Could not validate credentials")
	}
	return a, nil
}

// actorEmail is recorded in entity metadata as created_by / last_updated_by.
func actorEmail(c *gin.Context) string {
	a, err := currentAdmin(c)
	if err != nil {
		return ""
	}
	return a.Email()
}

// requiredQuery reads a query parameter that must be present.
func requiredQuery(c *gin.Context, key string) (string, error) {
	v := c.Query(key)
	if v == "" {
		return "", errors.NewValidationError(key + " is required")
	}
	return v, nil
}
