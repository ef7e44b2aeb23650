package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
)

func render(t *testing.T, fn func(c *gin.Context)) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	fn(c)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{"not found", errors.NewNotFoundError("Subscription not found"), http.StatusNotFound, StatusError},
		{"validation", errors.NewValidationError("bad date"), http.StatusBadRequest, StatusError},
		{"forbidden is a failure", errors.NewForbiddenError("Invalid secret key"), http.StatusForbidden, StatusFailure},
		{"conflict is a failure", errors.NewConflictError("Email already exists"), http.StatusConflict, StatusFailure},
		{"wrapped app error", fmt.Errorf("outer: %w", errors.NewUnauthorizedError("expired")), http.StatusUnauthorized, StatusError},
		{"plain error hidden", fmt.Errorf("dial tcp: refused"), http.StatusInternalServerError, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := render(t, func(c *gin.Context) { ErrorResponseWithError(c, tt.err) })
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestErrorResponseWithError_HidesInternalDetail(t *testing.T) {
	_, resp := render(t, func(c *gin.Context) { ErrorResponseWithError(c, fmt.Errorf("password=secret")) })
	assert.NotContains(t, resp.Comment, "secret")
	assert.Nil(t, resp.Data)
}

func TestCreatedResponse(t *testing.T) {
	code, resp := render(t, func(c *gin.Context) { CreatedResponse(c, "Plan created", gin.H{"id": "plan_1"}) })
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "Plan created", resp.Comment)
}
