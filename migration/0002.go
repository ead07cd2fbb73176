package migration

import (
	"github.com/authbase-lab/userdb/entity"
	"gorm.io/gorm"
)

// migrate0002 creates the table for refresh token pairs.
func migrate0002(db *gorm.DB) error {
	if db.Migrator().HasTable(&entity.AccessRefreshToken{}) {
		return nil
	}

	return db.Migrator().CreateTable(&entity.AccessRefreshToken{})
}
