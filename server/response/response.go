package response

import (
	"net/http"

	errs "github.com/Mohfazam/CIVICOS/errors"
	"github.com/gin-gonic/gin"
)

// JSON writes the uniform response envelope. Domain errors surface their
// stable code; the storage detail is shown only while gin runs in debug
// mode so driver internals never leak in production.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	body := gin.H{
		"message": message,
		"data":    data,
		"status":  http.StatusText(status),
	}

	if err != nil {
		if e, ok := err.(*errs.Error); ok {
			errBody := gin.H{"code": e.Code, "message": e.Message}
			if e.Detail != "" && gin.IsDebugging() {
				errBody["detail"] = e.Detail
			}
			body["errors"] = errBody
			if message == "" {
				body["message"] = e.Message
			}
		} else {
			body["errors"] = gin.H{"code": errs.CodeStorageFailure, "message": err.Error()}
		}
	}

	c.JSON(status, body)
}

// Err resolves the HTTP status from a domain error and responds with it.
// Unknown error types collapse to a 500 with a generic message.
func Err(c *gin.Context, err error) {
	if e, ok := err.(*errs.Error); ok {
		JSON(c, "", e.Status, nil, e)
		return
	}
	JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
}
