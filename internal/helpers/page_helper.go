package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderPage writes the named page with its data. Messages pending from a
// redirect come first, then those queued by this request.
func RenderPage(c *gin.Context, statusCode int, page string, data gin.H) {
	messages := []string{}
	if store := GetFlashStore(c); store != nil {
		messages = append(messages, store.Pop(c)...)
	}
	messages = append(messages, queuedMessages(c)...)

	body := gin.H{}
	for k, v := range data {
		body[k] = v
	}
	body["page"] = page
	body["messages"] = messages

	c.JSON(statusCode, body)
}

// RedirectWithFlash carries queued messages to the redirect target.
func RedirectWithFlash(c *gin.Context, location string) error {
	if store := GetFlashStore(c); store != nil {
		if err := store.Save(c); err != nil {
			return err
		}
	}
	c.Redirect(http.StatusSeeOther, location)
	return nil
}
