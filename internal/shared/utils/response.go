package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailure = "failure"
)

// APIResponse is the uniform envelope every endpoint returns.
type APIResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Comment    string      `json:"comment"`
	Data       interface{} `json:"data"`
}

// ErrorDetail is placed in data when an error carries diagnostic details.
type ErrorDetail struct {
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func writeEnvelope(c *gin.Context, status string, statusCode int, comment string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Status:     status,
		StatusCode: statusCode,
		Comment:    comment,
		Data:       data,
	})
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, comment string, data interface{}) {
	writeEnvelope(c, StatusSuccess, statusCode, comment, data)
}

// CreatedResponse sends a 201 response
func CreatedResponse(c *gin.Context, comment string, data interface{}) {
	writeEnvelope(c, StatusSuccess, http.StatusCreated, comment, data)
}

// ErrorResponse sends an error response with custom status code and comment
func ErrorResponse(c *gin.Context, statusCode int, comment string) {
	writeEnvelope(c, StatusError, statusCode, comment, nil)
}

// ErrorResponseWithData sends an error response that still carries data,
// e.g. per-item failure reasons.
func ErrorResponseWithData(c *gin.Context, statusCode int, comment string, data interface{}) {
	writeEnvelope(c, StatusError, statusCode, comment, data)
}

// ErrorResponseWithError renders err into the envelope. AppErrors keep their
// code and message; anything else becomes an opaque 500.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		writeEnvelope(c, StatusError, http.StatusInternalServerError, constants.ErrMsgInternalServerError, nil)
		return
	}

	status := StatusError
	if appErr.IsFailure() {
		status = StatusFailure
	}

	var data interface{}
	if appErr.Details != "" {
		data = ErrorDetail{Type: string(appErr.Type), Details: appErr.Details}
	}

	writeEnvelope(c, status, appErr.Code, appErr.Message, data)
}

// ListSuccessResponse sends a successful list response with pagination
func ListSuccessResponse(c *gin.Context, comment string, items interface{}, total int64, page, pageSize int) {
	SuccessResponse(c, http.StatusOK, comment, ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	})
}
