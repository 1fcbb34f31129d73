package models

import (
	"time"

	"gorm.io/datatypes"
)

type PackageStatus string

const (
	PackageDraft     PackageStatus = "draft"
	PackageActive    PackageStatus = "active"
	PackageCancelled PackageStatus = "cancelled"
)

// CanTransitionTo reports whether a package may move from s to next.
// Staying in the same status is always allowed.
func (s PackageStatus) CanTransitionTo(next PackageStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PackageDraft:
		return next == PackageActive || next == PackageCancelled
	case PackageActive:
		return next == PackageCancelled
	}
	return false
}

func (s PackageStatus) Valid() bool {
	switch s {
	case PackageDraft, PackageActive, PackageCancelled:
		return true
	}
	return false
}

type Package struct {
	ID        string            `gorm:"primaryKey;type:varchar(64)" json:"id"`
	LodgingID *string           `gorm:"type:varchar(64);index" json:"lodging_id"`
	Status    PackageStatus     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Addons    datatypes.JSONMap `json:"addons"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	Lodging *Lodging `gorm:"foreignKey:LodgingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"lodging,omitempty"`
	Events  []Event  `gorm:"many2many:package_events;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"events"`
}

// PackageEvent is the package_events join row. Its existence is membership.
type PackageEvent struct {
	PackageID string    `gorm:"primaryKey;type:varchar(64)"`
	EventID   string    `gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time
}
