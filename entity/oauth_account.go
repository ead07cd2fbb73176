package entity

import "database/sql"

type OAuthAccount struct {
	Base

	UserID string `gorm:"size:36;not null;index"`

	OAuthName    string         `gorm:"size:100;not null;index:idx_oauth_name_account_id,unique"`
	AccountID    string         `gorm:"size:320;not null;index:idx_oauth_name_account_id,unique"`
	AccountEmail string         `gorm:"size:320;not null"`
	AccessToken  string         `gorm:"size:1024;not null"`
	ExpiresAt    sql.NullInt64
	RefreshToken sql.NullString `gorm:"size:1024"`
}

func (OAuthAccount) TableName() string {
	return "oauth_accounts"
}
