package emails

import (
	"Backend-Props/src/database"
	"Backend-Props/src/models"
	"Backend-Props/src/services/profiles"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrEmailNotFound = errors.New("email not found")
	ErrEmailTaken    = errors.New("this address is already in use")
)

var validate = validator.New()

func toValidationError(err error) error {
	ve := &models.ValidationError{Fields: map[string]string{}}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			ve.Fields[strings.ToLower(fe.Field())] = "failed on the '" + fe.Tag() + "' rule"
		}
		return ve
	}
	return err
}

// SaveRequest is the add/edit body for an alternate address.
type SaveRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"max=80"`
	Bio         string `json:"bio" validate:"max=500"`
	AvatarURL   string `json:"avatarUrl" validate:"omitempty,url"`
}

// GetEmailsForProfile lists a profile's alternate addresses, oldest first.
func GetEmailsForProfile(ctx context.Context, profileID primitive.ObjectID) ([]models.UserEmail, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.EmailCollection.Find(ctx, bson.M{"profileId": profileID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.UserEmail{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddEmail registers a new alternate address. The address must not collide
// with any handle or address already in the identifier space. A profile's
// first address becomes primary automatically.
func AddEmail(ctx context.Context, profileID primitive.ObjectID, req *SaveRequest) (*models.UserEmail, error) {
	if err := validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	taken, err := profiles.IdentifierExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	count, err := database.EmailCollection.CountDocuments(ctx, bson.M{"profileId": profileID})
	if err != nil {
		return nil, err
	}

	email := &models.UserEmail{
		ID:          primitive.NewObjectID(),
		ProfileID:   profileID,
		Email:       req.Email,
		IsPrimary:   count == 0,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		CreatedAt:   time.Now(),
	}

	if _, err := database.EmailCollection.InsertOne(ctx, email); err != nil {
		return nil, err
	}
	return email, nil
}

// UpdateEmail edits the display overrides of an owned address. The address
// string itself is immutable; delete and re-add to change it.
func UpdateEmail(ctx context.Context, profileID, emailID primitive.ObjectID, req *SaveRequest) (*models.UserEmail, error) {
	// only the override fields; the address string is not editable
	if err := validate.StructPartial(req, "DisplayName", "Bio", "AvatarURL"); err != nil {
		return nil, toValidationError(err)
	}

	update := bson.M{"$set": bson.M{
		"displayName": req.DisplayName,
		"bio":         req.Bio,
		"avatarUrl":   req.AvatarURL,
	}}

	result, err := database.EmailCollection.UpdateOne(ctx,
		bson.M{"_id": emailID, "profileId": profileID}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrEmailNotFound
	}

	var email models.UserEmail
	if err := database.EmailCollection.FindOne(ctx, bson.M{"_id": emailID}).Decode(&email); err != nil {
		return nil, err
	}
	return &email, nil
}

// SetPrimary makes one address the profile's primary. Demote-all then
// promote-one, two sequential updates. If the second write fails the
// profile is briefly left with no primary; the next delete or set-primary
// repairs it.
func SetPrimary(ctx context.Context, profileID, emailID primitive.ObjectID) error {
	count, err := database.EmailCollection.CountDocuments(ctx,
		bson.M{"_id": emailID, "profileId": profileID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrEmailNotFound
	}

	if _, err := database.EmailCollection.UpdateMany(ctx,
		bson.M{"profileId": profileID},
		bson.M{"$set": bson.M{"isPrimary": false}}); err != nil {
		return err
	}

	_, err = database.EmailCollection.UpdateOne(ctx,
		bson.M{"_id": emailID},
		bson.M{"$set": bson.M{"isPrimary": true}})
	return err
}

// DeleteEmail removes an owned address. When the primary is deleted and
// other addresses remain, the oldest one is promoted.
func DeleteEmail(ctx context.Context, profileID, emailID primitive.ObjectID) error {
	var email models.UserEmail
	err := database.EmailCollection.FindOne(ctx,
		bson.M{"_id": emailID, "profileId": profileID}).Decode(&email)
	if err == mongo.ErrNoDocuments {
		return ErrEmailNotFound
	}
	if err != nil {
		return err
	}

	if _, err := database.EmailCollection.DeleteOne(ctx, bson.M{"_id": emailID}); err != nil {
		return err
	}

	if !email.IsPrimary {
		return nil
	}

	remaining, err := GetEmailsForProfile(ctx, profileID)
	if err != nil {
		return err
	}
	next := NextPrimary(remaining)
	if next == nil {
		return nil
	}

	_, err = database.EmailCollection.UpdateOne(ctx,
		bson.M{"_id": next.ID},
		bson.M{"$set": bson.M{"isPrimary": true}})
	return err
}

// NextPrimary picks which address to promote when the primary disappears:
// the earliest-registered of the remaining ones, or nil if none are left.
func NextPrimary(remaining []models.UserEmail) *models.UserEmail {
	var next *models.UserEmail
	for i := range remaining {
		if remaining[i].IsPrimary {
			// still has a primary, nothing to do
			return nil
		}
		if next == nil || remaining[i].CreatedAt.Before(next.CreatedAt) {
			next = &remaining[i]
		}
	}
	return next
}
