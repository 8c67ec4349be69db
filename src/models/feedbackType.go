package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Input kinds a feedback type can declare. Questionnaire sub-questions are
// restricted to the first three kinds, so nesting never recurses.
const (
	InputText          = "text"
	InputStars         = "stars"
	InputRating        = "rating"
	InputQuestionnaire = "questionnaire"
)

// FeedbackType is a configurable feedback template owned by a profile.
// Questions is only meaningful when InputType is questionnaire; a
// questionnaire without questions falls back to plain text behavior.
type FeedbackType struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID   primitive.ObjectID `bson:"profileId" json:"profileId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	InputType   string             `bson:"inputType" json:"inputType"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Questions   []SubQuestion      `bson:"questions,omitempty" json:"questions,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// SubQuestion is one item of a questionnaire feedback type.
type SubQuestion struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Prompt    string             `bson:"prompt" json:"prompt"`
	InputType string             `bson:"inputType" json:"inputType"`
}
