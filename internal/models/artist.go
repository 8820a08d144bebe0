package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `json:"name"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Phone              string         `gorm:"size:120" json:"phone"`
	Genres             pq.StringArray `gorm:"type:varchar[];not null" json:"genres"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string         `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool           `gorm:"not null" json:"seeking_venue"`
	SeekingDescription string         `gorm:"size:500" json:"seeking_description"`
	Shows              []Show         `gorm:"foreignKey:ArtistID" json:"-"`
}

func (Artist) TableName() string {
	return "artist"
}

func (artist *Artist) BeforeSave(tx *gorm.DB) (err error) {
	if artist.Genres == nil {
		artist.Genres = pq.StringArray{}
	}
	return
}
