package middleware

import (
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/gin-gonic/gin"
)

func FlashMiddleware(store *helpers.FlashStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		helpers.SetFlashStore(c, store)
		c.Next()
	}
}
