package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.RegisterValidators()
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// NewRawTestContext is NewTestContext with a body that is sent as is.
func NewRawTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// MultipartFile is one file part of a multipart test request.
type MultipartFile struct {
	Field    string
	Filename string
	Content  []byte
}

// NewMultipartTestContext builds a multipart/form-data request.
func NewMultipartTestContext(path string, fields map[string]string, files []MultipartFile) (*gin.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for _, f := range files {
		part, _ := mw.CreateFormFile(f.Field, f.Filename)
		_, _ = part.Write(f.Content)
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetAuthContext stores the admin in the context the way the auth middleware does.
func SetAuthContext(c *gin.Context, a *admin.Admin) {
	c.Set(constants.ContextKeyAdminID, a.ID())
	c.Set(constants.ContextKeyAdmin, a)
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// NewTestAdmin builds an admin with the given role and ID.
func NewTestAdmin(id string, role admin.Role) *admin.Admin {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := admin.ReconstructAdmin(id, admin.Profile{
		Firstname:   "Test",
		Surname:     "Admin",
		Email:       id + "@goldvault.test",
		Country:     "United Arab Emirates",
		CountryCode: "+971",
		PhoneNumber: "500000000",
	}, "hash", role, nil, "", now, now)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Comment    string          `json:"comment"`
	Data       json.RawMessage `json:"data"`
}

// DecodeResponse parses the envelope, failing loudly on malformed JSON.
func DecodeResponse(w *httptest.ResponseRecorder) APIResponse {
	var resp APIResponse
	if err := ParseResponse(w, &resp); err != nil {
		panic("testutil: response is not an envelope: " + err.Error() + ": " + w.Body.String())
	}
	return resp
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return logger.NewNopLogger()
}
