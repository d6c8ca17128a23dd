package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope standardizes the API JSON response. Every non-200 carries
// Success=false and a non-empty Error.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Sent reports a delivered submission together with the transport message id.
func Sent(c *gin.Context, message, messageID string) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Message:   message,
		MessageID: messageID,
		RequestID: c.GetString("RequestID"),
	})
}

// Error sends a failure envelope. Details may be empty.
func Error(c *gin.Context, code int, errMsg, details string) {
	c.JSON(code, Envelope{
		Success:   false,
		Error:     errMsg,
		Details:   details,
		RequestID: c.GetString("RequestID"),
	})
}
