package handlers

import (
	"time"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/models"
)

type areaVenue struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []areaVenue `json:"venues"`
}

// groupByArea buckets venues by city and state, keeping the order in which
// each area is first seen.
func groupByArea(venues []models.Venue) []area {
	areas := []area{}
	index := map[[2]string]int{}
	for _, venue := range venues {
		key := [2]string{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, area{City: venue.City, State: venue.State, Venues: []areaVenue{}})
		}
		areas[i].Venues = append(areas[i].Venues, areaVenue{ID: venue.ID, Name: venue.Name})
	}
	return areas
}

// splitShows separates shows that started before now from the rest.
func splitShows(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	past, upcoming = []models.Show{}, []models.Show{}
	for _, show := range shows {
		if show.StartTime.Before(now) {
			past = append(past, show)
		} else {
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}

type showView struct {
	ID               uint   `json:"id"`
	VenueID          uint   `json:"venue_id"`
	VenueName        string `json:"venue_name,omitempty"`
	VenueImageLink   string `json:"venue_image_link,omitempty"`
	ArtistID         uint   `json:"artist_id"`
	ArtistName       string `json:"artist_name,omitempty"`
	ArtistImageLink  string `json:"artist_image_link,omitempty"`
	StartTime        string `json:"start_time"`
	StartTimeDisplay string `json:"start_time_display"`
}

func newShowView(show models.Show) showView {
	view := showView{
		ID:               show.ID,
		VenueID:          show.VenueID,
		ArtistID:         show.ArtistID,
		StartTime:        show.StartTime.Format(time.RFC3339),
		StartTimeDisplay: helpers.FormatDatetime(show.StartTime, "full"),
	}
	if show.Venue != nil {
		view.VenueName = show.Venue.Name
		view.VenueImageLink = show.Venue.ImageLink
	}
	if show.Artist != nil {
		view.ArtistName = show.Artist.Name
		view.ArtistImageLink = show.Artist.ImageLink
	}
	return view
}

func showViews(shows []models.Show) []showView {
	views := make([]showView, 0, len(shows))
	for _, show := range shows {
		views = append(views, newShowView(show))
	}
	return views
}
