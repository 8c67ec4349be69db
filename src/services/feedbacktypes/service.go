package feedbacktypes

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrFeedbackTypeNotFound = errors.New("feedback type not found")
	ErrNameTaken            = errors.New("a feedback type with this name already exists")
)

var validate = validator.New()

// SaveRequest is the create/update body for a feedback type definition.
type SaveRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=60"`
	Description string               `json:"description" validate:"max=300"`
	InputType   string               `json:"inputType" validate:"required,oneof=text stars rating questionnaire"`
	IsActive    *bool                `json:"isActive"`
	Questions   []SubQuestionRequest `json:"questions" validate:"dive"`
}

// SubQuestionRequest is one questionnaire item. Questionnaires cannot nest.
type SubQuestionRequest struct {
	Prompt    string `json:"prompt" validate:"required,min=1,max=200"`
	InputType string `json:"inputType" validate:"required,oneof=text stars rating"`
}

func (r *SaveRequest) validateDefinition() error {
	if err := validate.Struct(r); err != nil {
		return toValidationError(err)
	}
	if r.InputType != models.InputQuestionnaire && len(r.Questions) > 0 {
		return models.NewValidationError("questions", "questions are only allowed on questionnaire types")
	}
	return nil
}

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

// CreateFeedbackType stores a new template for the owning profile. Names
// are unique per profile because they appear in public submission URLs.
func CreateFeedbackType(ctx context.Context, profileID primitive.ObjectID, req *SaveRequest) (*models.FeedbackType, error) {
	if err := req.validateDefinition(); err != nil {
		return nil, err
	}

	count, err := database.FeedbackTypeCollection.CountDocuments(ctx,
		bson.M{"profileId": profileID, "name": req.Name})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameTaken
	}

	now := time.Now()
	ft := &models.FeedbackType{
		ID:          primitive.NewObjectID(),
		ProfileID:   profileID,
		Name:        req.Name,
		Description: req.Description,
		InputType:   req.InputType,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		ft.IsActive = *req.IsActive
	}
	for _, q := range req.Questions {
		ft.Questions = append(ft.Questions, models.SubQuestion{
			ID:        primitive.NewObjectID(),
			Prompt:    q.Prompt,
			InputType: q.InputType,
		})
	}

	if _, err := database.FeedbackTypeCollection.InsertOne(ctx, ft); err != nil {
		return nil, err
	}
	return ft, nil
}

// UpdateFeedbackType replaces the definition of an owned template.
func UpdateFeedbackType(ctx context.Context, profileID, typeID primitive.ObjectID, req *SaveRequest) (*models.FeedbackType, error) {
	if err := req.validateDefinition(); err != nil {
		return nil, err
	}

	existing, err := getOwned(ctx, profileID, typeID)
	if err != nil {
		return nil, err
	}

	if req.Name != existing.Name {
		count, err := database.FeedbackTypeCollection.CountDocuments(ctx,
			bson.M{"profileId": profileID, "name": req.Name, "_id": bson.M{"$ne": typeID}})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameTaken
		}
	}

	questions := []models.SubQuestion{}
	for _, q := range req.Questions {
		questions = append(questions, models.SubQuestion{
			ID:        primitive.NewObjectID(),
			Prompt:    q.Prompt,
			InputType: q.InputType,
		})
	}

	update := bson.M{"$set": bson.M{
		"name":        req.Name,
		"description": req.Description,
		"inputType":   req.InputType,
		"questions":   questions,
		"updatedAt":   time.Now(),
	}}
	if req.IsActive != nil {
		update["$set"].(bson.M)["isActive"] = *req.IsActive
	}

	if _, err := database.FeedbackTypeCollection.UpdateOne(ctx,
		bson.M{"_id": typeID, "profileId": profileID}, update); err != nil {
		return nil, err
	}

	return getOwned(ctx, profileID, typeID)
}

// SetActive toggles whether the template is offered to submitters.
func SetActive(ctx context.Context, profileID, typeID primitive.ObjectID, active bool) error {
	result, err := database.FeedbackTypeCollection.UpdateOne(ctx,
		bson.M{"_id": typeID, "profileId": profileID},
		bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrFeedbackTypeNotFound
	}
	return nil
}

// DeleteFeedbackType removes an owned template.
func DeleteFeedbackType(ctx context.Context, profileID, typeID primitive.ObjectID) error {
	result, err := database.FeedbackTypeCollection.DeleteOne(ctx,
		bson.M{"_id": typeID, "profileId": profileID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFeedbackTypeNotFound
	}
	return nil
}

// GetFeedbackTypesForProfile lists every template a profile owns, for the
// settings page.
func GetFeedbackTypesForProfile(ctx context.Context, profileID primitive.ObjectID) ([]models.FeedbackType, error) {
	return find(ctx, bson.M{"profileId": profileID})
}

// GetActiveFeedbackTypes lists the templates offered on the public profile
// page. Only active ones are visible to submitters.
func GetActiveFeedbackTypes(ctx context.Context, profileID primitive.ObjectID) ([]models.FeedbackType, error) {
	return find(ctx, bson.M{"profileId": profileID, "isActive": true})
}

// GetActiveFeedbackTypeByName fetches the single active template behind a
// direct submission URL.
func GetActiveFeedbackTypeByName(ctx context.Context, profileID primitive.ObjectID, name string) (*models.FeedbackType, error) {
	var ft models.FeedbackType
	err := database.FeedbackTypeCollection.FindOne(ctx,
		bson.M{"profileId": profileID, "name": name, "isActive": true}).Decode(&ft)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFeedbackTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ft, nil
}

// GetFeedbackTypeByID fetches a template by primary key.
func GetFeedbackTypeByID(ctx context.Context, id primitive.ObjectID) (*models.FeedbackType, error) {
	var ft models.FeedbackType
	err := database.FeedbackTypeCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&ft)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFeedbackTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ft, nil
}

func getOwned(ctx context.Context, profileID, typeID primitive.ObjectID) (*models.FeedbackType, error) {
	var ft models.FeedbackType
	err := database.FeedbackTypeCollection.FindOne(ctx,
		bson.M{"_id": typeID, "profileId": profileID}).Decode(&ft)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFeedbackTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ft, nil
}

func find(ctx context.Context, filter bson.M) ([]models.FeedbackType, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.FeedbackTypeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	types := []models.FeedbackType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}
