package db

import (
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted records. Soft delete is a nullable
// deleted_at column managed by the application, not gorm.DeletedAt, because
// deleted rows must stay addressable for restore.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotDeletedWithAlias filters out soft-deleted records of an aliased table
// in a joined query.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}

// OnlyDeleted keeps soft-deleted records only, for the trash view.
func OnlyDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NOT NULL")
	}
}
