package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Access Gate ───────────────────────────────────────────────────
	ErrAPIKeyRequired ErrCode = "API_KEY_REQUIRED"
	ErrAPIKeyInvalid  ErrCode = "INVALID_API_KEY"
	ErrMisconfigured  ErrCode = "API_KEY_NOT_CONFIGURED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Completion provider ───────────────────────────────────────────
	ErrProviderUnavailable ErrCode = "PROVIDER_UNAVAILABLE"
	ErrProviderRejected    ErrCode = "PROVIDER_REJECTED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Access Gate ───────────────────────────────────────────────────
	case ErrAPIKeyRequired:
		return "API Key is required. Include 'X-API-Key' header in your request."
	case ErrAPIKeyInvalid:
		return "Invalid API Key."
	case ErrMisconfigured:
		return "API Key is not configured on the server."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."

	// ─── Completion provider ───────────────────────────────────────────
	case ErrProviderUnavailable:
		return "The completion provider could not be reached."
	case ErrProviderRejected:
		return "The completion provider rejected the request."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
