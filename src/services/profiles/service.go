package profiles

import (
	"Backend-Props/src/database"
	"Backend-Props/src/models"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrUsernameTaken = errors.New("username is already taken")

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

// CreateProfile inserts the profile created at account registration.
func CreateProfile(ctx context.Context, profile *models.Profile) error {
	taken, err := IdentifierExists(ctx, profile.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt

	_, err = database.ProfileCollection.InsertOne(ctx, profile)
	return err
}

// GetProfileByID fetches a profile by primary key.
func GetProfileByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	err := database.ProfileCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByUserID fetches the profile owned by an account.
func GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	err := database.ProfileCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileRequest carries the settings-page mutable fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" validate:"max=80"`
	Bio         string `json:"bio" validate:"max=500"`
	AvatarURL   string `json:"avatarUrl" validate:"omitempty,url"`
}

// UpdateProfile applies the settings-page fields to the caller's profile.
func UpdateProfile(ctx context.Context, id primitive.ObjectID, req *UpdateProfileRequest) (*models.Profile, error) {
	if err := validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	update := bson.M{"$set": bson.M{
		"displayName": req.DisplayName,
		"bio":         req.Bio,
		"avatarUrl":   req.AvatarURL,
		"updatedAt":   time.Now(),
	}}

	result, err := database.ProfileCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrProfileNotFound
	}

	return GetProfileByID(ctx, id)
}

// IdentifierExists reports whether an identifier is already claimed as a
// handle or as an alternate address, or is reserved for a fixed route.
// Used to keep the identifier space collision free when registering
// handles and adding addresses.
func IdentifierExists(ctx context.Context, identifier string) (bool, error) {
	if IsReservedIdentifier(identifier) {
		return true, nil
	}

	count, err := database.ProfileCollection.CountDocuments(ctx, bson.M{"username": identifier})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	count, err = database.EmailCollection.CountDocuments(ctx, bson.M{"email": identifier})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
