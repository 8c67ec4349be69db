package feedbacks

import (
	"Backend-Props/src/models"
	"fmt"
	"strings"
)

// Bounds per input kind.
const (
	minContentLength = 3
	starsMin         = 1
	starsMax         = 5
	ratingMin        = 1
	ratingMax        = 10
	ratingDefault    = 5 // midpoint the slider starts at
)

// Controls a client renders for the fields of a feedback form.
const (
	ControlTextarea = "textarea"
	ControlStars    = "stars"
	ControlSlider   = "slider"
)

// SubmitRequest is the raw submission body for any input kind. Which value
// field is read depends on the feedback type; the rest are ignored.
type SubmitRequest struct {
	Content     string                 `json:"content"`
	Stars       *int                   `json:"stars"`
	Rating      *int                   `json:"rating"`
	Answers     map[string]interface{} `json:"answers"`
	IsAnonymous bool                   `json:"isAnonymous"`
	IsPublic    bool                   `json:"isPublic"`
}

// effectiveKind collapses a questionnaire with no sub-questions to plain
// text, which is how every other rule treats it.
func effectiveKind(ft *models.FeedbackType) string {
	if ft.InputType == models.InputQuestionnaire && len(ft.Questions) == 0 {
		return models.InputText
	}
	if ft.InputType == "" {
		return models.InputText
	}
	return ft.InputType
}

// ValidateSubmission checks the request against the feedback type's schema.
// Returns *models.ValidationError describing every failing field, or nil.
func ValidateSubmission(ft *models.FeedbackType, req *SubmitRequest) error {
	fields := map[string]string{}

	switch effectiveKind(ft) {
	case models.InputText:
		if len(strings.TrimSpace(req.Content)) < minContentLength {
			fields["content"] = fmt.Sprintf("feedback must be at least %d characters", minContentLength)
		}

	case models.InputStars:
		if req.Stars == nil {
			fields["stars"] = "a star rating is required"
		} else if *req.Stars < starsMin || *req.Stars > starsMax {
			fields["stars"] = fmt.Sprintf("stars must be between %d and %d", starsMin, starsMax)
		}

	case models.InputRating:
		if req.Rating == nil {
			fields["rating"] = "a rating is required"
		} else if *req.Rating < ratingMin || *req.Rating > ratingMax {
			fields["rating"] = fmt.Sprintf("rating must be between %d and %d", ratingMin, ratingMax)
		}

	case models.InputQuestionnaire:
		validateAnswers(ft, req.Answers, fields)

	default:
		fields["inputType"] = "unknown input type: " + ft.InputType
	}

	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

func validateAnswers(ft *models.FeedbackType, answers map[string]interface{}, fields map[string]string) {
	known := make(map[string]models.SubQuestion, len(ft.Questions))
	for _, q := range ft.Questions {
		known[q.ID.Hex()] = q
	}

	for key := range answers {
		if _, ok := known[key]; !ok {
			fields[key] = "answer does not match any question"
		}
	}

	for _, q := range ft.Questions {
		key := q.ID.Hex()
		value, ok := answers[key]
		if !ok {
			fields[key] = "an answer is required: " + q.Prompt
			continue
		}
		if msg := validateAnswerValue(value, q.InputType); msg != "" {
			fields[key] = msg
		}
	}
}

// validateAnswerValue applies the per-kind rule to one questionnaire
// answer. Sub-questions are never questionnaires themselves.
func validateAnswerValue(value interface{}, inputType string) string {
	switch inputType {
	case models.InputText, "":
		str, ok := value.(string)
		if !ok || len(strings.TrimSpace(str)) < minContentLength {
			return fmt.Sprintf("answer must be text of at least %d characters", minContentLength)
		}

	case models.InputStars:
		n, ok := intValue(value)
		if !ok || n < starsMin || n > starsMax {
			return fmt.Sprintf("answer must be a whole number between %d and %d", starsMin, starsMax)
		}

	case models.InputRating:
		n, ok := intValue(value)
		if !ok || n < ratingMin || n > ratingMax {
			return fmt.Sprintf("answer must be a whole number between %d and %d", ratingMin, ratingMax)
		}

	default:
		return "unknown question type: " + inputType
	}
	return ""
}

// intValue extracts an integral number from a decoded JSON/BSON value.
func intValue(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// BuildRecord maps a validated request onto a Feedback record, populating
// exactly one of content / stars / rating / answers per the type's kind.
func BuildRecord(ft *models.FeedbackType, req *SubmitRequest, sender *models.CurrentUser) *models.Feedback {
	feedback := &models.Feedback{
		ProfileID:      ft.ProfileID,
		FeedbackTypeID: ft.ID,
		IsAnonymous:    req.IsAnonymous,
		IsVisible:      req.IsPublic,
	}

	if !req.IsAnonymous && sender != nil {
		id := sender.ID
		feedback.SenderID = &id
	}

	switch effectiveKind(ft) {
	case models.InputText:
		feedback.Content = req.Content
	case models.InputStars:
		feedback.Stars = req.Stars
	case models.InputRating:
		feedback.Rating = req.Rating
	case models.InputQuestionnaire:
		feedback.Answers = req.Answers
	}

	return feedback
}

// FormFields returns the rendering contract for a feedback type: the list
// of controls, in order, that a client shows before submitting.
func FormFields(ft *models.FeedbackType) []models.FormField {
	switch effectiveKind(ft) {
	case models.InputStars:
		return []models.FormField{{
			Key: "stars", Control: ControlStars, Required: true,
			Min: starsMin, Max: starsMax,
		}}

	case models.InputRating:
		return []models.FormField{{
			Key: "rating", Control: ControlSlider, Required: true,
			Min: ratingMin, Max: ratingMax, Default: ratingDefault,
		}}

	case models.InputQuestionnaire:
		out := make([]models.FormField, 0, len(ft.Questions))
		for _, q := range ft.Questions {
			field := models.FormField{Key: q.ID.Hex(), Label: q.Prompt, Required: true}
			switch q.InputType {
			case models.InputStars:
				field.Control = ControlStars
				field.Min, field.Max = starsMin, starsMax
			case models.InputRating:
				field.Control = ControlSlider
				field.Min, field.Max = ratingMin, ratingMax
				field.Default = ratingDefault
			default:
				field.Control = ControlTextarea
				field.Min = minContentLength
			}
			out = append(out, field)
		}
		return out

	default:
		return []models.FormField{{
			Key: "content", Control: ControlTextarea, Required: true,
			Min: minContentLength,
		}}
	}
}
