// Package response renders the uniform API envelope:
// {success, message, data, timestamp}, with statusCode and isAlert added on
// errors. isAlert marks user-facing validation/business failures (4xx) as
// opposed to unexpected server failures (5xx).
package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type ErrorEnvelope struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	StatusCode int       `json:"statusCode"`
	IsAlert    bool      `json:"isAlert"`
}

func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func Err(c *gin.Context, status int, message string) {
	c.JSON(status, errorEnvelope(status, message))
}

// AbortErr is Err for middleware: it also stops the handler chain.
func AbortErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope(status, message))
}

func errorEnvelope(status int, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Success:    false,
		Message:    message,
		Timestamp:  time.Now().UTC(),
		StatusCode: status,
		IsAlert:    status < 500,
	}
}
