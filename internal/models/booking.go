package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           string        `gorm:"primaryKey;type:varchar(64)" json:"id"`
	PackageID    string        `gorm:"type:varchar(64);not null;index" json:"package_id"`
	UserID       string        `gorm:"type:varchar(64);not null;index" json:"user_id"`
	PaymentToken string        `gorm:"not null" json:"-"`
	Status       BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Package *Package `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"package,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
}
