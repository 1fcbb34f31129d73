package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table of the booking platform.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Package{}, "Events", &PackageEvent{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&User{},
		&Agent{},
		&AdminUser{},
		&Event{},
		&Lodging{},
		&Package{},
		&PackageEvent{},
		&Booking{},
		&Message{},
	)
}
