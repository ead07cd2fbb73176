package entity

type User struct {
	Base

	Email          string `gorm:"size:320;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:1024;not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	IsSuperuser    bool   `gorm:"not null;default:false"`
	IsVerified     bool   `gorm:"not null;default:false"`

	// Metadata carries whatever extra columns a consumer attaches to its
	// users without forking the table definition.
	Metadata Map

	OAuthAccounts []OAuthAccount `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
