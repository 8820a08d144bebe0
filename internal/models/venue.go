package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `json:"name"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Address            string         `gorm:"size:120" json:"address"`
	Phone              string         `gorm:"size:120" json:"phone"`
	Genres             pq.StringArray `gorm:"type:varchar[];not null" json:"genres"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	WebsiteLink        string         `gorm:"size:120" json:"website_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	SeekingTalent      bool           `gorm:"not null" json:"seeking_talent"`
	SeekingDescription string         `gorm:"size:500" json:"seeking_description"`
	Shows              []Show         `gorm:"foreignKey:VenueID" json:"-"`
}

func (Venue) TableName() string {
	return "venue"
}

func (venue *Venue) BeforeSave(tx *gorm.DB) (err error) {
	if venue.Genres == nil {
		venue.Genres = pq.StringArray{}
	}
	return
}
