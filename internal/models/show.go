package models

import "time"

// Show links one artist to one venue at a point in time. Both foreign keys
// are required and checked by the database when the row is inserted.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `json:"start_time"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	Venue     *Venue    `gorm:"foreignKey:VenueID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"venue,omitempty"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	Artist    *Artist   `gorm:"foreignKey:ArtistID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"artist,omitempty"`
}

func (Show) TableName() string {
	return "shows"
}
