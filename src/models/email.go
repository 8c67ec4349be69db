package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEmail is a secondary public identifier for a profile. The address is
// unique across the whole identifier space. Non-empty override fields
// replace the owning profile's values when the profile is resolved through
// this address.
type UserEmail struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID   primitive.ObjectID `bson:"profileId" json:"profileId"`
	Email       string             `bson:"email" json:"email"`
	IsPrimary   bool               `bson:"isPrimary" json:"isPrimary"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
