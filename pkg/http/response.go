package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the wire shape of failure responses: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSONResponse writes data verbatim with the given status. Used for endpoints
// whose body shape is fixed by the front-end contract.
func JSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// InternalServerErrorResponse writes a 500 with the error's message.
func InternalServerErrorResponse(c echo.Context, err error) error {
	return ErrorResponse(c, http.StatusInternalServerError, err.Error())
}

// AppErrorResponse writes an application error with its own status, falling
// back to a plain 500 body for untyped errors.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Error())
	}
	return InternalServerErrorResponse(c, err)
}
