package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApiKey stores only the SHA-256 digest of the key material. The plaintext
// key is returned exactly once, at creation time.
type ApiKey struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileID primitive.ObjectID `bson:"profileId" json:"profileId"`
	Name      string             `bson:"name" json:"name"`
	KeyHash   string             `bson:"keyHash" json:"-"`
	Prefix    string             `bson:"prefix" json:"prefix"` // first chars shown in listings
	LastUsed  *time.Time         `bson:"lastUsed,omitempty" json:"lastUsed,omitempty"`
	ExpiresAt *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
