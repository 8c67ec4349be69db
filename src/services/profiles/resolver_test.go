package profiles

import (
	"Backend-Props/src/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fixedProfile(username string) *models.Profile {
	return &models.Profile{
		ID:          primitive.NewObjectID(),
		Username:    username,
		Email:       username + "@example.com",
		DisplayName: "Account " + username,
		Bio:         "account bio",
		CreatedAt:   time.Now(),
	}
}

func missLookup(ctx context.Context, identifier string) (*models.Profile, error) {
	return nil, nil
}

func hitLookup(p *models.Profile) lookupFunc {
	return func(ctx context.Context, identifier string) (*models.Profile, error) {
		return p, nil
	}
}

func TestResolverPrecedence(t *testing.T) {
	t.Run("FirstHitShortCircuits", func(t *testing.T) {
		byHandle := fixedProfile("alice")
		byAddress := fixedProfile("alice-alt")

		called := false
		r := &Resolver{chain: []lookupFunc{
			hitLookup(byHandle),
			func(ctx context.Context, identifier string) (*models.Profile, error) {
				called = true
				return byAddress, nil
			},
		}}

		got, err := r.Resolve(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, byHandle, got)
		assert.False(t, called, "later lookups must not run after a hit")
	})

	t.Run("FallsThroughToLaterLookup", func(t *testing.T) {
		byAddress := fixedProfile("bob")
		r := &Resolver{chain: []lookupFunc{missLookup, missLookup, hitLookup(byAddress)}}

		got, err := r.Resolve(context.Background(), "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, byAddress, got)
	})

	t.Run("AllMissesIsNotFound", func(t *testing.T) {
		r := &Resolver{chain: []lookupFunc{missLookup, missLookup, missLookup}}

		got, err := r.Resolve(context.Background(), "nobody")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("DataErrorIsNotNotFound", func(t *testing.T) {
		boom := errors.New("connection reset")
		r := &Resolver{chain: []lookupFunc{
			missLookup,
			func(ctx context.Context, identifier string) (*models.Profile, error) {
				return nil, boom
			},
			hitLookup(fixedProfile("carol")), // must never be reached
		}}

		got, err := r.Resolve(context.Background(), "carol")
		assert.Nil(t, got)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrProfileNotFound)
		assert.ErrorIs(t, err, boom)
	})
}

func TestMergeOverrides(t *testing.T) {
	t.Run("OverridesReplaceOnlyNonEmptyFields", func(t *testing.T) {
		profile := fixedProfile("bob")
		email := &models.UserEmail{
			ProfileID:   profile.ID,
			Email:       "bob@example.com",
			DisplayName: "Bob @ Acme",
		}

		merged := MergeOverrides(profile, email)
		assert.Equal(t, "Bob @ Acme", merged.DisplayName)
		assert.Equal(t, profile.Bio, merged.Bio)
		assert.Equal(t, profile.AvatarURL, merged.AvatarURL)
		assert.Equal(t, profile.ID, merged.ID)
		assert.Equal(t, profile.Username, merged.Username)
	})

	t.Run("AllOverridesApply", func(t *testing.T) {
		profile := fixedProfile("dana")
		email := &models.UserEmail{
			DisplayName: "Dana (work)",
			Bio:         "work persona",
			AvatarURL:   "https://cdn.example.com/dana-work.png",
		}

		merged := MergeOverrides(profile, email)
		assert.Equal(t, "Dana (work)", merged.DisplayName)
		assert.Equal(t, "work persona", merged.Bio)
		assert.Equal(t, "https://cdn.example.com/dana-work.png", merged.AvatarURL)
	})

	t.Run("InputProfileIsNotMutated", func(t *testing.T) {
		profile := fixedProfile("erin")
		original := *profile
		email := &models.UserEmail{DisplayName: "Erin Elsewhere"}

		_ = MergeOverrides(profile, email)
		assert.Equal(t, original, *profile)
	})
}
