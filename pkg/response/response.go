package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "taskboard/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends the status and message carried by an *errors.HTTPError.
// Any other error is reported as 500 with its text in the error field.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		resp := Resp{Message: httpErr.Message}
		if httpErr.Cause != nil {
			resp.Error = httpErr.Cause.Error()
		}
		c.JSON(httpErr.Code, resp)
		return
	}

	InternalError(c, err)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	resp := Resp{Message: pkgErrors.ErrInternalServerError.Message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(pkgErrors.ErrTooManyRequests.Code, Resp{
		Message: pkgErrors.ErrTooManyRequests.Message,
	})
}
