package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

func ListVenues(c *gin.Context) {
	db, ok := session(c)
	if !ok {
		return
	}

	venues, err := repository.NewVenueRepository(db).All(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("Failed to list venues")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "venues", gin.H{"areas": groupByArea(venues)})
}

func SearchVenues(c *gin.Context) {
	db, ok := session(c)
	if !ok {
		return
	}

	result, err := repository.NewVenueRepository(db).Search(c.Request.Context(), c.PostForm("search_term"))
	if errors.Is(err, repository.ErrEmptySearchTerm) {
		helpers.Flash(c, "Please insert a value to search for a venue")
	} else if err != nil {
		middleware.Logger(c).WithError(err).Error("Failed to search venues")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "search_venues", gin.H{
		"count":       result.Count,
		"results":     result.Data,
		"search_term": result.Term,
	})
}

func GetVenue(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	venue, err := repository.NewVenueRepository(db).FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		middleware.Logger(c).WithError(err).WithField("venue_id", id).Error("Failed to load venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	past, upcoming := splitShows(venue.Shows, time.Now())
	helpers.RenderPage(c, http.StatusOK, "show_venue", gin.H{
		"venue":                venue,
		"past_shows":           showViews(past),
		"upcoming_shows":       showViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

func NewVenueForm(c *gin.Context) {
	helpers.RenderPage(c, http.StatusOK, "new_venue", gin.H{"form": VenueForm{Genres: []string{}}})
}

func CreateVenue(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		middleware.Logger(c).WithError(err).Warn("Invalid venue form")
		helpers.Flash(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		helpers.RenderPage(c, http.StatusBadRequest, "new_venue", gin.H{"form": form})
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	venue, err := repository.NewVenueRepository(db).Create(c.Request.Context(), form.input())
	if err != nil {
		middleware.Logger(c).WithError(err).WithField("venue", form.Name).Error("Failed to create venue")
		helpers.Flash(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		helpers.RenderPage(c, http.StatusInternalServerError, "home", nil)
		return
	}

	helpers.Flash(c, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	helpers.RenderPage(c, http.StatusCreated, "home", gin.H{"venue": venue})
}

func EditVenueForm(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	venue, err := repository.NewVenueRepository(db).FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		middleware.Logger(c).WithError(err).WithField("venue_id", id).Error("Failed to load venue")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "edit_venue", gin.H{"venue": venue, "form": venueFormFrom(venue)})
}

func UpdateVenue(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}
	location := fmt.Sprintf("/venues/%d", id)
	log := middleware.Logger(c).WithField("venue_id", id)

	var form VenueForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		log.WithError(err).Warn("Invalid venue form")
		helpers.Flash(c, "An error occurred. Venue details could not be edited.")
		redirect(c, log, location)
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	venue, err := repository.NewVenueRepository(db).Update(c.Request.Context(), id, form.input())
	if errors.Is(err, repository.ErrNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to update venue")
		helpers.Flash(c, "An error occurred. Venue details could not be edited.")
	} else {
		helpers.Flash(c, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	}
	redirect(c, log, location)
}

func DeleteVenue(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	if err := repository.NewVenueRepository(db).Delete(c.Request.Context(), id); err != nil {
		status := statusFor(err)
		switch status {
		case http.StatusNotFound:
			helpers.RespondWithError(c, status, "Venue not found.")
		case http.StatusConflict:
			helpers.RespondWithError(c, status, "Venue still has shows and could not be deleted.")
		default:
			middleware.Logger(c).WithError(err).WithField("venue_id", id).Error("Failed to delete venue")
			helpers.RespondWithError(c, status, "An error occurred. Venue could not be deleted.")
		}
		return
	}

	helpers.Flash(c, "Venue was successfully deleted!")
	helpers.RenderPage(c, http.StatusOK, "home", nil)
}

func redirect(c *gin.Context, log *logrus.Entry, location string) {
	if err := helpers.RedirectWithFlash(c, location); err != nil {
		log.WithError(err).Error("Failed to store flash messages")
		c.Redirect(http.StatusSeeOther, location)
	}
}
