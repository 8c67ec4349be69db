package feedbacktypes

import (
	"Backend-Props/src/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRequestValidation(t *testing.T) {
	t.Run("AcceptsEachInputKind", func(t *testing.T) {
		for _, kind := range []string{"text", "stars", "rating", "questionnaire"} {
			req := &SaveRequest{Name: "General", InputType: kind}
			assert.NoError(t, req.validateDefinition(), "kind %s must be accepted", kind)
		}
	})

	t.Run("RejectsUnknownKind", func(t *testing.T) {
		req := &SaveRequest{Name: "General", InputType: "emoji"}
		assert.Error(t, req.validateDefinition())
	})

	t.Run("RejectsMissingName", func(t *testing.T) {
		req := &SaveRequest{InputType: "text"}
		assert.Error(t, req.validateDefinition())
	})

	t.Run("RejectsNestedQuestionnaire", func(t *testing.T) {
		req := &SaveRequest{
			Name:      "Survey",
			InputType: "questionnaire",
			Questions: []SubQuestionRequest{
				{Prompt: "Nested?", InputType: "questionnaire"},
			},
		}
		assert.Error(t, req.validateDefinition())
	})

	t.Run("RejectsEmptyPrompt", func(t *testing.T) {
		req := &SaveRequest{
			Name:      "Survey",
			InputType: "questionnaire",
			Questions: []SubQuestionRequest{
				{Prompt: "", InputType: "text"},
			},
		}
		assert.Error(t, req.validateDefinition())
	})

	t.Run("RejectsQuestionsOnNonQuestionnaire", func(t *testing.T) {
		req := &SaveRequest{
			Name:      "General",
			InputType: "text",
			Questions: []SubQuestionRequest{
				{Prompt: "Anything?", InputType: "text"},
			},
		}
		err := req.validateDefinition()
		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "questions")
	})

	t.Run("AcceptsQuestionnaireWithMixedKinds", func(t *testing.T) {
		req := &SaveRequest{
			Name:      "Survey",
			InputType: "questionnaire",
			Questions: []SubQuestionRequest{
				{Prompt: "How did onboarding go?", InputType: "text"},
				{Prompt: "Rate the docs", InputType: "stars"},
				{Prompt: "Would you recommend us?", InputType: "rating"},
			},
		}
		assert.NoError(t, req.validateDefinition())
	})
}
