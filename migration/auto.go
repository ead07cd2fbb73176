package migration

import (
	"github.com/authbase-lab/userdb/entity"
	"gorm.io/gorm"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.OAuthAccount{},
		&entity.AccessToken{},
		&entity.AccessRefreshToken{},
	)
}
