package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Code      ErrCode           `json:"error"`
	Message   string            `json:"message"`
	Detail    string            `json:"detail,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends data as the JSON body with the given status code.
// Use-case payloads are flat, so there is no envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response carrying the default message of code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, build(c, code, GetMessage(code), "", nil))
}

// FailWithMessage sends an error response with a caller-facing message.
func FailWithMessage(c *gin.Context, statusCode int, code ErrCode, message string) {
	c.JSON(statusCode, build(c, code, message, "", nil))
}

// FailWithDetail sends an error response with the default message of code and
// an extra detail line, e.g. the message returned by the completion vendor.
func FailWithDetail(c *gin.Context, statusCode int, code ErrCode, detail string) {
	c.JSON(statusCode, build(c, code, GetMessage(code), detail, nil))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, message string, fields map[string]string) {
	c.JSON(statusCode, build(c, code, message, "", fields))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, build(c, code, GetMessage(code), "", nil))
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func build(c *gin.Context, code ErrCode, message, detail string, fields map[string]string) ErrorBody {
	return ErrorBody{
		Code:      code,
		Message:   message,
		Detail:    detail,
		Fields:    fields,
		RequestID: c.GetString(ContextKeyRequestID),
	}
}
