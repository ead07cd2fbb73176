package testutil

import (
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/authbase-lab/userdb/entity"
	"github.com/authbase-lab/userdb/pkg/crypto"
)

// SampleUser inserts a user with randomized fields and returns it. Non-zero
// fields of init overwrite the sample before it is saved.
func SampleUser(db *gorm.DB, init *entity.User) (entity.User, error) {
	hashed, err := crypto.HashPassword(uuid.NewString())
	if err != nil {
		return entity.User{}, err
	}

	sample := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Email:          uuid.NewString() + "@camelot.bt",
		HashedPassword: hashed,
		IsActive:       true,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := db.Create(sample).Error; err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SampleOAuthAccount inserts an OAuth account, creating an owner user first
// when init does not name one.
func SampleOAuthAccount(db *gorm.DB, init *entity.OAuthAccount) (entity.OAuthAccount, error) {
	sample := &entity.OAuthAccount{
		Base:         entity.Base{ID: uuid.NewString()},
		OAuthName:    "camelot",
		AccountID:    uuid.NewString(),
		AccountEmail: uuid.NewString() + "@camelot.bt",
		AccessToken:  uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.UserID == "" {
		user, err := SampleUser(db, nil)
		if err != nil {
			return *sample, err
		}

		sample.UserID = user.ID
	}

	if err := db.Create(sample).Error; err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SampleAccessToken inserts an access token, creating an owner user first
// when init does not name one.
func SampleAccessToken(db *gorm.DB, init *entity.AccessToken) (entity.AccessToken, error) {
	token, err := crypto.GenerateToken()
	if err != nil {
		return entity.AccessToken{}, err
	}

	sample := &entity.AccessToken{Token: token}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.UserID == "" {
		user, err := SampleUser(db, nil)
		if err != nil {
			return *sample, err
		}

		sample.UserID = user.ID
	}

	if err := db.Create(sample).Error; err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SampleAccessRefreshToken inserts a refresh token pair, creating an owner
// user first when init does not name one.
func SampleAccessRefreshToken(db *gorm.DB, init *entity.AccessRefreshToken) (entity.AccessRefreshToken, error) {
	token, err := crypto.GenerateToken()
	if err != nil {
		return entity.AccessRefreshToken{}, err
	}

	refreshToken, err := crypto.GenerateToken()
	if err != nil {
		return entity.AccessRefreshToken{}, err
	}

	sample := &entity.AccessRefreshToken{Token: token, RefreshToken: refreshToken}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.UserID == "" {
		user, err := SampleUser(db, nil)
		if err != nil {
			return *sample, err
		}

		sample.UserID = user.ID
	}

	if err := db.Create(sample).Error; err != nil {
		return *sample, err
	}

	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
