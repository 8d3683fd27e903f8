// Package responses renders the API envelope every handler speaks:
// {status, message, data, error}.
package responses

import "github.com/gin-gonic/gin"

type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Fail reports an error outcome. err may be nil when the message alone
// carries the reason (bad input, missing resource).
func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := Envelope{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}
