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
)

func ListArtists(c *gin.Context) {
	db, ok := session(c)
	if !ok {
		return
	}

	artists, err := repository.NewArtistRepository(db).All(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("Failed to list artists")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "artists", gin.H{"artists": artists})
}

func SearchArtists(c *gin.Context) {
	db, ok := session(c)
	if !ok {
		return
	}

	result, err := repository.NewArtistRepository(db).Search(c.Request.Context(), c.PostForm("search_term"))
	if errors.Is(err, repository.ErrEmptySearchTerm) {
		helpers.Flash(c, "Please insert a value to search for artist")
	} else if err != nil {
		middleware.Logger(c).WithError(err).Error("Failed to search artists")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "search_artists", gin.H{
		"count":       result.Count,
		"results":     result.Data,
		"search_term": result.Term,
	})
}

func GetArtist(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	artist, err := repository.NewArtistRepository(db).FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		middleware.Logger(c).WithError(err).WithField("artist_id", id).Error("Failed to load artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	past, upcoming := splitShows(artist.Shows, time.Now())
	helpers.RenderPage(c, http.StatusOK, "show_artist", gin.H{
		"artist":               artist,
		"past_shows":           showViews(past),
		"upcoming_shows":       showViews(upcoming),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

func NewArtistForm(c *gin.Context) {
	helpers.RenderPage(c, http.StatusOK, "new_artist", gin.H{"form": ArtistForm{Genres: []string{}}})
}

func CreateArtist(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		middleware.Logger(c).WithError(err).Warn("Invalid artist form")
		helpers.Flash(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		helpers.RenderPage(c, http.StatusBadRequest, "new_artist", gin.H{"form": form})
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	artist, err := repository.NewArtistRepository(db).Create(c.Request.Context(), form.input())
	if err != nil {
		middleware.Logger(c).WithError(err).WithField("artist", form.Name).Error("Failed to create artist")
		helpers.Flash(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		helpers.RenderPage(c, http.StatusInternalServerError, "home", nil)
		return
	}

	helpers.Flash(c, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	helpers.RenderPage(c, http.StatusCreated, "home", gin.H{"artist": artist})
}

func EditArtistForm(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	artist, err := repository.NewArtistRepository(db).FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		middleware.Logger(c).WithError(err).WithField("artist_id", id).Error("Failed to load artist")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	helpers.RenderPage(c, http.StatusOK, "edit_artist", gin.H{"artist": artist, "form": artistFormFrom(artist)})
}

func UpdateArtist(c *gin.Context) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}
	location := fmt.Sprintf("/artists/%d", id)
	log := middleware.Logger(c).WithField("artist_id", id)

	var form ArtistForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		log.WithError(err).Warn("Invalid artist form")
		helpers.Flash(c, "An error occurred. Artist details could not be edited.")
		redirect(c, log, location)
		return
	}

	db, ok := session(c)
	if !ok {
		return
	}

	artist, err := repository.NewArtistRepository(db).Update(c.Request.Context(), id, form.input())
	if errors.Is(err, repository.ErrNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to update artist")
		helpers.Flash(c, "An error occurred. Artist details could not be edited.")
	} else {
		helpers.Flash(c, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	}
	redirect(c, log, location)
}
