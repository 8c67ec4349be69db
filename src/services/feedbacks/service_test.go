package feedbacks

import (
	"Backend-Props/src/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The paths below must fail before any persistence happens, so they are
// safe to exercise without a database connection.

func TestSubmitFeedbackGuards(t *testing.T) {
	t.Run("NonAnonymousWithoutUserIsRejected", func(t *testing.T) {
		req := &SubmitRequest{Rating: intPtr(8), IsAnonymous: false}

		feedback, err := SubmitFeedback(context.Background(), ratingType(), req, nil)
		assert.Nil(t, feedback)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("InvalidPayloadIsRejectedBeforeInsert", func(t *testing.T) {
		req := &SubmitRequest{Rating: intPtr(11), IsAnonymous: true}

		feedback, err := SubmitFeedback(context.Background(), ratingType(), req, nil)
		assert.Nil(t, feedback)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "rating")
	})

	t.Run("AnonymousSubmissionNeedsNoUser", func(t *testing.T) {
		// validation passes with no signed-in user, so the guard must not
		// fire for anonymous submissions
		req := &SubmitRequest{Rating: intPtr(8), IsAnonymous: true}
		assert.NoError(t, ValidateSubmission(ratingType(), req))

		feedback := BuildRecord(ratingType(), req, nil)
		assert.Nil(t, feedback.SenderID)
		assert.True(t, feedback.IsAnonymous)
		require.NotNil(t, feedback.Rating)
		assert.Equal(t, 8, *feedback.Rating)
	})
}
