package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbKey = "db"

// DatabaseMiddleware gives every request its own session bound to the
// request context. A positive timeout caps how long its queries may run.
func DatabaseMiddleware(db *gorm.DB, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		c.Request = c.Request.WithContext(ctx)
		c.Set(dbKey, db.WithContext(ctx))
		c.Next()
	}
}

func GetDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get(dbKey)
	if !exists {
		return nil
	}
	return db.(*gorm.DB)
}
