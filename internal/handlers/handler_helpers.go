package handlers

import (
	"errors"
	"net/http"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func session(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return db, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrReferencedRowMissing):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrHasDependents):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
