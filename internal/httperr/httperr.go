package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond writes err using the status that matches its kind. It reports
// whether the error was an expected business error; anything else is
// answered with a 500 and should be logged by the caller.
func Respond(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Internal server error.")
		return false
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, message)
	case KindConflict:
		Conflict(c, be.Code, message)
	default:
		BadRequest(c, be.Code, message)
	}
	return true
}
