package profiles

import (
	"Backend-Props/src/models"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("RejectsOverlongBio", func(t *testing.T) {
		req := &UpdateProfileRequest{Bio: strings.Repeat("x", 501)}

		_, err := UpdateProfile(ctx, id, req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "bio")
	})

	t.Run("RejectsOverlongDisplayName", func(t *testing.T) {
		req := &UpdateProfileRequest{DisplayName: strings.Repeat("n", 81)}

		_, err := UpdateProfile(ctx, id, req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "displayname")
	})

	t.Run("RejectsNonURLAvatar", func(t *testing.T) {
		req := &UpdateProfileRequest{AvatarURL: "not a url"}

		_, err := UpdateProfile(ctx, id, req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "avatarurl")
	})
}

func TestReservedIdentifiers(t *testing.T) {
	ctx := context.Background()

	t.Run("FixedRoutesAreReserved", func(t *testing.T) {
		for _, id := range []string{"settings", "dashboard", "api", "swagger"} {
			assert.True(t, IsReservedIdentifier(id), "%s must be reserved", id)
		}
	})

	t.Run("OrdinaryHandlesAreNot", func(t *testing.T) {
		for _, id := range []string{"alice", "dash", "settings2"} {
			assert.False(t, IsReservedIdentifier(id), "%s must not be reserved", id)
		}
	})

	t.Run("IdentifierExistsClaimsReservedWords", func(t *testing.T) {
		taken, err := IdentifierExists(ctx, "dashboard")
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("RegisteringReservedHandleFails", func(t *testing.T) {
		err := CreateProfile(ctx, &models.Profile{Username: "settings"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}
