package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a single submission against a profile's feedback type.
// Exactly one of Content / Stars / Rating / Answers is populated, chosen by
// the feedback type's input kind. SenderID is nil for anonymous entries.
type Feedback struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	ProfileID      primitive.ObjectID     `bson:"profileId" json:"profileId"`
	FeedbackTypeID primitive.ObjectID     `bson:"feedbackTypeId" json:"feedbackTypeId"`
	SenderID       *primitive.ObjectID    `bson:"senderId,omitempty" json:"senderId,omitempty"`
	Content        string                 `bson:"content,omitempty" json:"content,omitempty"`
	Stars          *int                   `bson:"stars,omitempty" json:"stars,omitempty"`
	Rating         *int                   `bson:"rating,omitempty" json:"rating,omitempty"`
	Answers        map[string]interface{} `bson:"answers,omitempty" json:"answers,omitempty"`
	IsAnonymous    bool                   `bson:"isAnonymous" json:"isAnonymous"`
	IsVisible      bool                   `bson:"isVisible" json:"isVisible"`
	CreatedAt      time.Time              `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt,omitempty" json:"updatedAt"`
}
