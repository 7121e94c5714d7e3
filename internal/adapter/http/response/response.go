// Package response writes the JSON bodies of the flight search API.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	Message string `json:"message"`

	// Details maps request fields to their validation messages
	Details map[string]string `json:"details,omitempty"`
}

// Error codes, paired with their default messages.
const (
	CodeInvalidRequest    = "invalid_request"
	MsgInvalidRequestBody = "Failed to parse request body"

	CodeValidationError = "validation_error"
	MsgValidationFailed = "Request validation failed"

	CodeInvalidPricing = "invalid_pricing_config"

	CodeNotFound       = "not_found"
	MsgPricingNotFound = "No pricing configuration has been stored"

	CodeServiceUnavailable = "service_unavailable"
	MsgServiceUnavailable  = "The pricing configuration store is currently unavailable"

	CodeTimeout         = "timeout"
	MsgTimeout          = "Request timed out"
	MsgRequestCancelled = "Request was cancelled"

	CodeInternalError = "internal_error"
	MsgInternalError  = "An unexpected error occurred"
)

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message, Details: details})
}
