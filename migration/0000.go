package migration

import (
	"gorm.io/gorm"
)

// migrate0000 creates the schema at its latest shape.
func migrate0000(db *gorm.DB) error {
	return AutoMigrate(db)
}
