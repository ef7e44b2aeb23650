package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyAdminID   = "admin_id"
	ContextKeyAdmin     = "admin"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableAdmins            = "admins"
	TableUsers             = "users"
	TablePlans             = "investment_plans"
	TableSubscriptions     = "subscriptions"
	TableInventories       = "inventories"
	TableInvestmentEntries = "investment_entries"

	// DateLayout is the DD-MM-YYYY layout used for every calendar date on the wire.
	DateLayout = "02-01-2006"

	// DateParseLayout also accepts unpadded days and months such as 3-1-2024.
	DateParseLayout = "2-1-2006"

	// DefaultCurrency is assigned to every freshly provisioned inventory.
	DefaultCurrency = "AED"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
