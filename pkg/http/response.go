package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload shape: a status-mapped free-text detail.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSONResponse writes data as a bare JSON body with the given status.
func JSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// SuccessResponse writes a 200 response with a bare JSON body.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// RawResponse writes pre-encoded JSON bytes verbatim, for upstream
// passthrough endpoints.
func RawResponse(c echo.Context, body []byte) error {
	return c.JSONBlob(http.StatusOK, body)
}

// DetailResponse writes an error payload with the given status.
func DetailResponse(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, ErrorBody{Detail: detail})
}

// BadRequestResponse writes a 400 with validation details.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusBadRequest, data)
}

// AppErrorResponse maps an error to its HTTP status and detail payload.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return DetailResponse(c, appErr.Status, appErr.Message)
	}
	return DetailResponse(c, http.StatusInternalServerError, err.Error())
}
