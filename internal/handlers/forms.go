package handlers

import (
	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
)

const seekingChecked = "y"

type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Address            string   `form:"address" json:"address" binding:"required"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f VenueForm) input() repository.VenueInput {
	return repository.VenueInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func venueFormFrom(venue *models.Venue) VenueForm {
	form := VenueForm{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             []string(venue.Genres),
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.WebsiteLink,
		SeekingDescription: venue.SeekingDescription,
	}
	if venue.SeekingTalent {
		form.SeekingTalent = seekingChecked
	}
	return form
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string   `form:"website_link" json:"website_link"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) input() repository.ArtistInput {
	return repository.ArtistInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormFrom(artist *models.Artist) ArtistForm {
	form := ArtistForm{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             []string(artist.Genres),
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.WebsiteLink,
		SeekingDescription: artist.SeekingDescription,
	}
	if artist.SeekingVenue {
		form.SeekingVenue = seekingChecked
	}
	return form
}

// ShowForm keeps the raw values so they can be echoed back when parsing fails.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id" binding:"required"`
	VenueID   string `form:"venue_id" json:"venue_id" binding:"required"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
}
