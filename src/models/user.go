package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the account record behind a profile. The password hash never
// leaves the server.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	RefID    primitive.ObjectID `bson:"refId" json:"refId"` // owning profile
}

// CurrentUser is the opaque signed-in identity handed to services by the
// auth middleware. A nil *CurrentUser means an anonymous visitor.
type CurrentUser struct {
	ID    primitive.ObjectID `json:"id"`
	Email string             `json:"email"`
}
