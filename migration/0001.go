package migration

import (
	"github.com/authbase-lab/userdb/entity"
	"gorm.io/gorm"
)

// migrate0001 adds the metadata column for databases created before users
// carried one.
func migrate0001(db *gorm.DB) error {
	if db.Migrator().HasColumn(&entity.User{}, "metadata") {
		return nil
	}

	return db.Migrator().AddColumn(&entity.User{}, "metadata")
}
