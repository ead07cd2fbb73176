package repository

import (
	"context"
	"errors"
	"time"

	"github.com/authbase-lab/userdb/entity"
	"gorm.io/gorm"
)

// AccessTokenRepository stores opaque access tokens. GetByToken takes a
// notBefore cutoff: tokens created before it are reported as ErrNotFound,
// which is how callers expire tokens by age. A zero notBefore disables the
// cutoff.
type AccessTokenRepository interface {
	GetByToken(ctx context.Context, token string, notBefore time.Time) (*entity.AccessToken, error)
	Create(ctx context.Context, token *entity.AccessToken) error
	Update(ctx context.Context, token *entity.AccessToken, changes map[string]any) error
	Delete(ctx context.Context, token *entity.AccessToken) error
}

type accessTokenRepository struct {
	db *gorm.DB
}

func NewAccessTokenRepository(db *gorm.DB) AccessTokenRepository {
	return &accessTokenRepository{db: db}
}

func (r *accessTokenRepository) GetByToken(ctx context.Context, token string, notBefore time.Time) (*entity.AccessToken, error) {
	db := r.db.WithContext(ctx).Where("token=?", token)
	if !notBefore.IsZero() {
		db = db.Where("created_at >= ?", notBefore.UTC())
	}

	var record entity.AccessToken
	if err := db.Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

func (r *accessTokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return err
	}

	return r.refresh(ctx, token)
}

func (r *accessTokenRepository) Update(ctx context.Context, token *entity.AccessToken, changes map[string]any) error {
	if len(changes) > 0 {
		err := r.db.WithContext(ctx).
			Model(&entity.AccessToken{}).
			Where("token=?", token.Token).
			Updates(changes).Error
		if err != nil {
			return err
		}
	}

	return r.refresh(ctx, token)
}

func (r *accessTokenRepository) Delete(ctx context.Context, token *entity.AccessToken) error {
	return r.db.WithContext(ctx).Delete(&entity.AccessToken{}, "token=?", token.Token).Error
}

func (r *accessTokenRepository) refresh(ctx context.Context, token *entity.AccessToken) error {
	fresh, err := r.GetByToken(ctx, token.Token, time.Time{})
	if err != nil {
		return err
	}

	*token = *fresh

	return nil
}

// AccessRefreshTokenRepository stores access tokens that carry a paired
// refresh token. GetByRefreshToken resolves the pair through the unique
// refresh token column, with the same notBefore semantics as GetByToken.
type AccessRefreshTokenRepository interface {
	GetByToken(ctx context.Context, token string, notBefore time.Time) (*entity.AccessRefreshToken, error)
	GetByRefreshToken(ctx context.Context, refreshToken string, notBefore time.Time) (*entity.AccessRefreshToken, error)
	Create(ctx context.Context, token *entity.AccessRefreshToken) error
	Update(ctx context.Context, token *entity.AccessRefreshToken, changes map[string]any) error
	Delete(ctx context.Context, token *entity.AccessRefreshToken) error
}

type accessRefreshTokenRepository struct {
	db *gorm.DB
}

func NewAccessRefreshTokenRepository(db *gorm.DB) AccessRefreshTokenRepository {
	return &accessRefreshTokenRepository{db: db}
}

func (r *accessRefreshTokenRepository) GetByToken(ctx context.Context, token string, notBefore time.Time) (*entity.AccessRefreshToken, error) {
	return r.getBy(ctx, "token=?", token, notBefore)
}

func (r *accessRefreshTokenRepository) GetByRefreshToken(ctx context.Context, refreshToken string, notBefore time.Time) (*entity.AccessRefreshToken, error) {
	return r.getBy(ctx, "refresh_token=?", refreshToken, notBefore)
}

func (r *accessRefreshTokenRepository) getBy(ctx context.Context, cond, value string, notBefore time.Time) (*entity.AccessRefreshToken, error) {
	db := r.db.WithContext(ctx).Where(cond, value)
	if !notBefore.IsZero() {
		db = db.Where("created_at >= ?", notBefore.UTC())
	}

	var record entity.AccessRefreshToken
	if err := db.Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

func (r *accessRefreshTokenRepository) Create(ctx context.Context, token *entity.AccessRefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return err
	}

	return r.refresh(ctx, token)
}

func (r *accessRefreshTokenRepository) Update(ctx context.Context, token *entity.AccessRefreshToken, changes map[string]any) error {
	if len(changes) > 0 {
		err := r.db.WithContext(ctx).
			Model(&entity.AccessRefreshToken{}).
			Where("token=?", token.Token).
			Updates(changes).Error
		if err != nil {
			return err
		}
	}

	return r.refresh(ctx, token)
}

func (r *accessRefreshTokenRepository) Delete(ctx context.Context, token *entity.AccessRefreshToken) error {
	return r.db.WithContext(ctx).Delete(&entity.AccessRefreshToken{}, "token=?", token.Token).Error
}

func (r *accessRefreshTokenRepository) refresh(ctx context.Context, token *entity.AccessRefreshToken) error {
	fresh, err := r.GetByToken(ctx, token.Token, time.Time{})
	if err != nil {
		return err
	}

	*token = *fresh

	return nil
}
