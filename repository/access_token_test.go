package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/authbase-lab/userdb/entity"
	"github.com/authbase-lab/userdb/pkg/crypto"
	"github.com/authbase-lab/userdb/pkg/testutil"
)

func TestAccessTokenReadWrite(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessTokenRepository(db)

	user, err := testutil.SampleUser(db, nil)
	require.NoError(t, err)

	value, err := crypto.GenerateToken()
	require.NoError(t, err)

	token := &entity.AccessToken{Token: value, UserID: user.ID}
	require.NoError(t, tokenRepo.Create(ctx, token))
	require.False(t, token.CreatedAt.IsZero())
	require.Equal(t, time.UTC, token.CreatedAt.Time().Location())

	got, err := tokenRepo.GetByToken(ctx, value, time.Time{})
	require.NoError(t, err)
	require.Equal(t, user.ID, got.UserID)
	require.True(t, got.CreatedAt.Equal(token.CreatedAt))

	_, err = tokenRepo.GetByToken(ctx, "no-such-token", time.Time{})
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_accessTokenRepository_GetByToken(t *testing.T) {
	created := time.Date(2024, 5, 14, 10, 0, 0, 123456789, time.UTC)
	bangkok := time.FixedZone("ICT", 7*60*60)

	tests := []struct {
		name      string
		notBefore time.Time
		wantErr   error
	}{
		{
			name:      "zero cutoff disables the age check",
			notBefore: time.Time{},
		},
		{
			name:      "cutoff before creation",
			notBefore: created.Add(-time.Hour),
		},
		{
			name:      "cutoff exactly at creation",
			notBefore: created,
		},
		{
			name:      "cutoff after creation",
			notBefore: created.Add(time.Hour),
			wantErr:   ErrNotFound,
		},
		{
			name:      "cutoff compared by instant, not by zone",
			notBefore: created.Add(time.Hour).In(bangkok),
			wantErr:   ErrNotFound,
		},
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessTokenRepository(db)

	user, err := testutil.SampleUser(db, nil)
	require.NoError(t, err)

	value, err := crypto.GenerateToken()
	require.NoError(t, err)

	token := &entity.AccessToken{
		Token:     value,
		UserID:    user.ID,
		CreatedAt: entity.NewUTCTime(created),
	}
	require.NoError(t, tokenRepo.Create(ctx, token))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenRepo.GetByToken(ctx, value, tt.notBefore)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, got.CreatedAt.Time().Equal(created))
		})
	}
}

func TestAccessTokenCreatedAtNormalizedToUTC(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessTokenRepository(db)

	user, err := testutil.SampleUser(db, nil)
	require.NoError(t, err)

	value, err := crypto.GenerateToken()
	require.NoError(t, err)

	bangkok := time.FixedZone("ICT", 7*60*60)
	created := time.Date(2024, 5, 14, 17, 0, 0, 0, bangkok)

	token := &entity.AccessToken{
		Token:     value,
		UserID:    user.ID,
		CreatedAt: entity.NewUTCTime(created),
	}
	require.NoError(t, tokenRepo.Create(ctx, token))

	got, err := tokenRepo.GetByToken(ctx, value, time.Time{})
	require.NoError(t, err)
	require.Equal(t, time.UTC, got.CreatedAt.Time().Location())
	require.True(t, got.CreatedAt.Time().Equal(created))
}

func TestAccessTokenDuplicate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessTokenRepository(db)

	token, err := testutil.SampleAccessToken(db, nil)
	require.NoError(t, err)

	err = tokenRepo.Create(ctx, &entity.AccessToken{
		Token:  token.Token,
		UserID: token.UserID,
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestAccessTokenUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessTokenRepository(db)

	token, err := testutil.SampleAccessToken(db, nil)
	require.NoError(t, err)

	backdated := token.CreatedAt.Time().Add(-2 * time.Hour)
	require.NoError(t, tokenRepo.Update(ctx, &token, map[string]any{"created_at": backdated}))
	require.True(t, token.CreatedAt.Time().Equal(backdated))

	// The slid timestamp is what the cutoff sees.
	_, err = tokenRepo.GetByToken(ctx, token.Token, backdated.Add(time.Minute))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccessTokenDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessTokenRepository(db)

	token, err := testutil.SampleAccessToken(db, nil)
	require.NoError(t, err)

	require.NoError(t, tokenRepo.Delete(ctx, &token))

	_, err = tokenRepo.GetByToken(ctx, token.Token, time.Time{})
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, tokenRepo.Delete(ctx, &token))
}

func TestAccessRefreshTokenReadWrite(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessRefreshTokenRepository(db)

	pair, err := testutil.SampleAccessRefreshToken(db, nil)
	require.NoError(t, err)

	got, err := tokenRepo.GetByRefreshToken(ctx, pair.RefreshToken, time.Time{})
	require.NoError(t, err)
	require.Equal(t, pair.Token, got.Token)

	_, err = tokenRepo.GetByRefreshToken(ctx, pair.RefreshToken, pair.CreatedAt.Time().Add(time.Hour))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = tokenRepo.GetByRefreshToken(ctx, "no-such-token", time.Time{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccessRefreshTokenDuplicateRefreshToken(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tokenRepo := NewAccessRefreshTokenRepository(db)

	pair, err := testutil.SampleAccessRefreshToken(db, nil)
	require.NoError(t, err)

	value, err := crypto.GenerateToken()
	require.NoError(t, err)

	err = tokenRepo.Create(ctx, &entity.AccessRefreshToken{
		Token:        value,
		UserID:       pair.UserID,
		RefreshToken: pair.RefreshToken,
	})
	require.Error(t, err)
}
