package repository

import (
	"time"

	"github.com/farellandr/fyyur/internal/models"
)

// VenueInput carries the settable venue fields as posted by the listing form.
// SeekingTalent is the raw checkbox value.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingTalent      string
	SeekingDescription string
}

func (in VenueInput) apply(venue *models.Venue) {
	venue.Name = in.Name
	venue.City = in.City
	venue.State = in.State
	venue.Address = in.Address
	venue.Phone = in.Phone
	venue.Genres = models.ParseGenres(in.Genres)
	venue.ImageLink = in.ImageLink
	venue.FacebookLink = in.FacebookLink
	venue.WebsiteLink = in.WebsiteLink
	venue.SeekingTalent = models.SeekingFlag(in.SeekingTalent)
	venue.SeekingDescription = in.SeekingDescription
}

type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingVenue       string
	SeekingDescription string
}

func (in ArtistInput) apply(artist *models.Artist) {
	artist.Name = in.Name
	artist.City = in.City
	artist.State = in.State
	artist.Phone = in.Phone
	artist.Genres = models.ParseGenres(in.Genres)
	artist.ImageLink = in.ImageLink
	artist.FacebookLink = in.FacebookLink
	artist.WebsiteLink = in.WebsiteLink
	artist.SeekingVenue = models.SeekingFlag(in.SeekingVenue)
	artist.SeekingDescription = in.SeekingDescription
}

type ShowInput struct {
	StartTime time.Time
	VenueID   uint
	ArtistID  uint
}
