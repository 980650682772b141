// Package response provides standardized HTTP response builders for the
// flight record API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// FieldFailure writes a 400 Bad Request response scoped to one input field.
func FieldFailure(c echo.Context, path, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
		Path:    path,
	})
}

// Forbidden writes a 403 Forbidden response.
func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, &ErrorDetail{
		Code:    CodeForbidden,
		Message: MsgNotFlightOwner,
	})
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: MsgFlightNotFound,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}

// OperationFailure writes an error response with the given status code.
// Used for store-level operation failures that carry their own status.
func OperationFailure(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, &ErrorDetail{
		Code:    CodeInternalError,
		Message: message,
	})
}
