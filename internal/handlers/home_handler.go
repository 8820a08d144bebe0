package handlers

import (
	"net/http"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	helpers.RenderPage(c, http.StatusOK, "home", nil)
}

func Healthz(c *gin.Context) {
	db, ok := session(c)
	if !ok {
		return
	}

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusServiceUnavailable, "Database unavailable.")
		return
	}
	c.String(http.StatusOK, "ok")
}

func NotFound(c *gin.Context) {
	helpers.RespondWithError(c, http.StatusNotFound, "Page not found.")
}
