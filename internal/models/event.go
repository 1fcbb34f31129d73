package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID        string                      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string                      `gorm:"not null" json:"title"`
	City      string                      `gorm:"not null;index" json:"city"`
	Venue     string                      `gorm:"not null" json:"venue"`
	Date      datatypes.Date              `gorm:"not null" json:"date"`
	Price     float64                     `gorm:"not null" json:"price"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// EventUpsertColumns are overwritten when an event id is submitted again.
var EventUpsertColumns = []string{"title", "city", "venue", "date", "price", "tags", "updated_at"}

type Lodging struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `gorm:"not null;index" json:"location"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var LodgingUpsertColumns = []string{"name", "location", "price", "updated_at"}
