package services

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
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRegistered    = errors.New("email is already registered")
)

var validate = validator.New()

// RegisterRequest is the sign-up body. The username becomes the profile's
// public handle.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Username    string `json:"username" validate:"required,min=3,max=30,alphanum"`
	DisplayName string `json:"displayName" validate:"max=80"`
}

// RegisterUser creates the account and its profile. The handle must not
// collide with anything already in the identifier space.
func RegisterUser(ctx context.Context, req *RegisterRequest) (*models.User, *models.Profile, error) {
	if err := validate.Struct(req); err != nil {
		ve := &models.ValidationError{Fields: map[string]string{}}
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			for _, fe := range errs {
				ve.Fields[strings.ToLower(fe.Field())] = "failed on the '" + fe.Tag() + "' rule"
			}
		}
		return nil, nil, ve
	}

	email := strings.ToLower(req.Email)

	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hash),
	}

	profile := &models.Profile{
		UserID:      user.ID,
		Username:    req.Username,
		Email:       email,
		DisplayName: req.DisplayName,
	}
	if err := profiles.CreateProfile(ctx, profile); err != nil {
		return nil, nil, err
	}

	user.RefID = profile.ID
	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		// roll back the profile so the handle does not stay claimed
		_, _ = database.ProfileCollection.DeleteOne(ctx, bson.M{"_id": profile.ID})
		return nil, nil, err
	}

	return user, profile, nil
}

// AuthenticateUser checks credentials and returns the account with its
// profile resolved.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, *models.Profile, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	profile, err := profiles.GetProfileByID(ctx, user.RefID)
	if err != nil {
		return nil, nil, err
	}

	return &user, profile, nil
}

// TouchLastLogin is best effort bookkeeping after a successful login.
func TouchLastLogin(ctx context.Context, userID primitive.ObjectID) {
	_, _ = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}})
}
