package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a feedback recipient. Username is the globally unique public
// handle used in profile URLs.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
