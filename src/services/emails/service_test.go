package emails

import (
	"Backend-Props/src/models"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func emailAt(addr string, createdAt time.Time, primary bool) models.UserEmail {
	return models.UserEmail{
		ID:        primitive.NewObjectID(),
		Email:     addr,
		IsPrimary: primary,
		CreatedAt: createdAt,
	}
}

func TestNextPrimary(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("PromotesEarliestRemaining", func(t *testing.T) {
		remaining := []models.UserEmail{
			emailAt("late@example.com", base.Add(48*time.Hour), false),
			emailAt("early@example.com", base, false),
			emailAt("mid@example.com", base.Add(24*time.Hour), false),
		}

		next := NextPrimary(remaining)
		require.NotNil(t, next)
		assert.Equal(t, "early@example.com", next.Email)
	})

	t.Run("NoRemainingMeansNothingToPromote", func(t *testing.T) {
		assert.Nil(t, NextPrimary(nil))
		assert.Nil(t, NextPrimary([]models.UserEmail{}))
	})

	t.Run("ExistingPrimaryIsLeftAlone", func(t *testing.T) {
		remaining := []models.UserEmail{
			emailAt("a@example.com", base, false),
			emailAt("b@example.com", base.Add(time.Hour), true),
		}
		assert.Nil(t, NextPrimary(remaining))
	})
}

func TestUpdateEmailValidation(t *testing.T) {
	ctx := context.Background()
	profileID := primitive.NewObjectID()
	emailID := primitive.NewObjectID()

	t.Run("RejectsOverlongBio", func(t *testing.T) {
		req := &SaveRequest{Bio: strings.Repeat("x", 501)}

		_, err := UpdateEmail(ctx, profileID, emailID, req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "bio")
	})

	t.Run("RejectsNonURLAvatar", func(t *testing.T) {
		req := &SaveRequest{AvatarURL: "not a url"}

		_, err := UpdateEmail(ctx, profileID, emailID, req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "avatarurl")
	})

	t.Run("EmptyAddressIsNotAnEditError", func(t *testing.T) {
		// the address is immutable on edit, so its rules must not fire
		req := &SaveRequest{Email: "", Bio: strings.Repeat("x", 501)}

		_, err := UpdateEmail(ctx, profileID, emailID, req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "bio")
		assert.NotContains(t, ve.Fields, "email")
	})
}

func TestAddEmailValidation(t *testing.T) {
	ctx := context.Background()
	profileID := primitive.NewObjectID()

	t.Run("RejectsMalformedAddress", func(t *testing.T) {
		_, err := AddEmail(ctx, profileID, &SaveRequest{Email: "not-an-address"})

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "email")
	})
}
