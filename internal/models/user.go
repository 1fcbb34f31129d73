package models

import "fmt"

type User struct {
	ID       string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

// PlaceholderUser builds the record stored for a user id seen for the first time.
func PlaceholderUser(id string) User {
	return User{
		ID:       id,
		Name:     fmt.Sprintf("User %s", id),
		Email:    fmt.Sprintf("%s@example.com", id),
		IsActive: true,
	}
}

type Agent struct {
	ID          string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID      *string `gorm:"type:varchar(64);index" json:"user_id"`
	DisplayName string  `gorm:"not null" json:"display_name"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
}

// AdminUser lives in its own identity space and is never linked to User.
type AdminUser struct {
	ID             string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Email          string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string  `gorm:"not null" json:"-"`
	Role           *string `gorm:"type:varchar(32)" json:"role"`
}
