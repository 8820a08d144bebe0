package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

// RespondWithError aborts the chain and writes an error body. Flash messages
// queued during the request travel with it.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:    HTTPStatusText(statusCode),
		Message:  customMessage,
		Messages: queuedMessages(c),
	})
}
