package repository

import (
	"context"
	"errors"

	"github.com/authbase-lab/userdb/entity"
	"gorm.io/gorm"
)

// UserRepository reads and writes user records on behalf of an
// authentication framework. Lookups that match nothing return ErrNotFound;
// constraint violations (for example a duplicate email) are returned exactly
// as the driver reports them.
type UserRepository interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByOAuthAccount(ctx context.Context, oauthName, accountID string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User, changes map[string]any) error
	Delete(ctx context.Context, user *entity.User) error
	AddOAuthAccount(ctx context.Context, user *entity.User, account *entity.OAuthAccount) error
	UpdateOAuthAccount(ctx context.Context, user *entity.User, account *entity.OAuthAccount, changes map[string]any) error
}

type UserRepositoryOption func(*userRepository)

// WithOAuthAccounts enables the OAuth account operations and makes user
// reads load the association. Without it, those operations return
// ErrNoOAuthAccounts.
func WithOAuthAccounts() UserRepositoryOption {
	return func(r *userRepository) {
		r.withOAuthAccounts = true
	}
}

type userRepository struct {
	db                *gorm.DB
	withOAuthAccounts bool
}

func NewUserRepository(db *gorm.DB, opts ...UserRepositoryOption) UserRepository {
	r := &userRepository{db: db}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *userRepository) scope(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.withOAuthAccounts {
		db = db.Preload("OAuthAccounts")
	}

	return db
}

func (r *userRepository) Get(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := r.scope(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

// GetByEmail matches the email case-insensitively. The stored casing is
// whatever Create received.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	err := r.scope(ctx).Where("LOWER(email)=LOWER(?)", email).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByOAuthAccount(ctx context.Context, oauthName, accountID string) (*entity.User, error) {
	if !r.withOAuthAccounts {
		return nil, ErrNoOAuthAccounts
	}

	var record entity.User
	err := r.scope(ctx).
		Model(&entity.User{}).
		Where("oauth_accounts.oauth_name=? AND oauth_accounts.account_id=?", oauthName, accountID).
		Joins("join oauth_accounts on users.id=oauth_accounts.user_id").
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &record, nil
}

// Create inserts the user and re-reads the row so the struct reflects what
// the database stored, including column defaults for the flag fields.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	return r.refresh(ctx, user)
}

// Update applies the changes map and re-reads the row into user. Flags must
// be updated through the map: assigning false to a struct field would be
// indistinguishable from leaving it unset.
func (r *userRepository) Update(ctx context.Context, user *entity.User, changes map[string]any) error {
	if len(changes) > 0 {
		err := r.db.WithContext(ctx).
			Model(&entity.User{}).
			Where("id=?", user.ID).
			Updates(changes).Error
		if err != nil {
			return err
		}
	}

	return r.refresh(ctx, user)
}

func (r *userRepository) Delete(ctx context.Context, user *entity.User) error {
	if r.withOAuthAccounts {
		// SQLite does not enforce the declared cascade unless foreign keys
		// are switched on, so remove the association rows explicitly.
		err := r.db.WithContext(ctx).Delete(&entity.OAuthAccount{}, "user_id=?", user.ID).Error
		if err != nil {
			return err
		}
	}

	return r.db.WithContext(ctx).Delete(&entity.User{}, "id=?", user.ID).Error
}

func (r *userRepository) AddOAuthAccount(ctx context.Context, user *entity.User, account *entity.OAuthAccount) error {
	if !r.withOAuthAccounts {
		return ErrNoOAuthAccounts
	}

	account.UserID = user.ID
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return err
	}

	user.OAuthAccounts = append(user.OAuthAccounts, *account)

	return nil
}

func (r *userRepository) UpdateOAuthAccount(ctx context.Context, user *entity.User, account *entity.OAuthAccount, changes map[string]any) error {
	if !r.withOAuthAccounts {
		return ErrNoOAuthAccounts
	}

	if len(changes) > 0 {
		err := r.db.WithContext(ctx).
			Model(&entity.OAuthAccount{}).
			Where("id=?", account.ID).
			Updates(changes).Error
		if err != nil {
			return err
		}
	}

	var fresh entity.OAuthAccount
	if err := r.db.WithContext(ctx).Where("id=?", account.ID).Take(&fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	*account = fresh
	for i := range user.OAuthAccounts {
		if user.OAuthAccounts[i].ID == fresh.ID {
			user.OAuthAccounts[i] = fresh
		}
	}

	return nil
}

func (r *userRepository) refresh(ctx context.Context, user *entity.User) error {
	fresh, err := r.Get(ctx, user.ID)
	if err != nil {
		return err
	}

	*user = *fresh

	return nil
}
