// Package repository is the Entity Store: gorm-backed persistence for every
// aggregate. Methods that take a tx use it when non-nil so callers can compose
// them inside one transaction; a nil tx runs against the repository's own pool.
package repository

import "gorm.io/gorm"

func conn(tx, db *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
