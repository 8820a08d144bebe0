package handlers

import (
	"net/http"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const showFailedMessage = "An error occurred. Show could not be listed."

func ListShows(c *gin.Context) {
	db, ok := session(c)
	if !ok {
		return
	}

	shows, err := repository.NewShowRepository(db).ListWithDetails(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("Failed to list shows")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "shows", gin.H{"shows": showViews(shows)})
}

func NewShowForm(c *gin.Context) {
	helpers.RenderPage(c, http.StatusOK, "new_show", gin.H{"form": ShowForm{}})
}

func CreateShow(c *gin.Context) {
	log := middleware.Logger(c)

	var form ShowForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		log.WithError(err).Warn("Invalid show form")
		rejectShow(c, http.StatusBadRequest, form)
		return
	}

	artistID, err := helpers.ParseID(form.ArtistID)
	if err != nil {
		log.WithError(err).Warn("Invalid artist id")
		rejectShow(c, http.StatusBadRequest, form)
		return
	}
	venueID, err := helpers.ParseID(form.VenueID)
	if err != nil {
		log.WithError(err).Warn("Invalid venue id")
		rejectShow(c, http.StatusBadRequest, form)
		return
	}
	startTime, err := helpers.ParseStartTime(form.StartTime)
	if err != nil {
		log.WithError(err).Warn("Invalid start time")
		rejectShow(c, http.StatusBadRequest, form)
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	show, err := repository.NewShowRepository(db).Create(c.Request.Context(), repository.ShowInput{
		StartTime: startTime,
		VenueID:   venueID,
		ArtistID:  artistID,
	})
	if err != nil {
		status := statusFor(err)
		entry := log.WithError(err).WithField("venue_id", venueID).WithField("artist_id", artistID)
		if status == http.StatusInternalServerError {
			entry.Error("Failed to create show")
		} else {
			entry.Warn("Show references a missing venue or artist")
		}
		helpers.Flash(c, showFailedMessage)
		helpers.RenderPage(c, status, "home", nil)
		return
	}

	helpers.Flash(c, "Show was successfully listed!")
	helpers.RenderPage(c, http.StatusCreated, "home", gin.H{"show": newShowView(*show)})
}

func rejectShow(c *gin.Context, status int, form ShowForm) {
	helpers.Flash(c, showFailedMessage)
	helpers.RenderPage(c, status, "new_show", gin.H{"form": form})
}
