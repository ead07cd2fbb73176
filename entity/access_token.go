package entity

import "gorm.io/gorm"

// AccessToken is an opaque bearer token issued for a user. The token string
// itself is the primary key: 43 characters, the url-safe base64 form of 32
// random bytes.
type AccessToken struct {
	Token string `gorm:"primarykey;size:43"`

	UserID string `gorm:"size:36;not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	CreatedAt UTCTime `gorm:"not null;index"`
}

func (AccessToken) TableName() string {
	return "access_tokens"
}

func (t *AccessToken) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = NowUTC()
	}

	return nil
}

// AccessRefreshToken is an access token paired with a refresh token that can
// be traded for a new pair.
type AccessRefreshToken struct {
	Token string `gorm:"primarykey;size:43"`

	UserID string `gorm:"size:36;not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	RefreshToken string  `gorm:"size:43;not null;uniqueIndex"`
	CreatedAt    UTCTime `gorm:"not null;index"`
}

func (AccessRefreshToken) TableName() string {
	return "access_refresh_tokens"
}

func (t *AccessRefreshToken) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = NowUTC()
	}

	return nil
}
