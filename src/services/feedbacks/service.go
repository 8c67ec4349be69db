package feedbacks

import (
	"Backend-Props/src/database"
	"Backend-Props/src/jobs"
	"Backend-Props/src/models"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrAuthRequired means a non-anonymous submission arrived without a
	// signed-in submitter. Nothing is persisted in that case.
	ErrAuthRequired = errors.New("sign in required for non-anonymous feedback")

	ErrFeedbackNotFound = errors.New("feedback not found")
)

// SubmitFeedback validates and persists one submission against an active
// feedback type. The insert is a single write; on failure the caller sees
// the error and no partial state exists.
func SubmitFeedback(ctx context.Context, ft *models.FeedbackType, req *SubmitRequest, sender *models.CurrentUser) (*models.Feedback, error) {
	if !req.IsAnonymous && sender == nil {
		return nil, ErrAuthRequired
	}

	if err := ValidateSubmission(ft, req); err != nil {
		return nil, err
	}

	feedback := BuildRecord(ft, req, sender)
	feedback.ID = primitive.NewObjectID()
	feedback.CreatedAt = time.Now()
	feedback.UpdatedAt = feedback.CreatedAt

	if _, err := database.FeedbackCollection.InsertOne(ctx, feedback); err != nil {
		return nil, err
	}

	enqueueReceivedNotification(feedback)

	return feedback, nil
}

// enqueueReceivedNotification hands the new feedback to the worker. Best
// effort: a missing queue never fails the submission.
func enqueueReceivedNotification(feedback *models.Feedback) {
	if database.AsynqClient == nil {
		return
	}

	task, err := jobs.NewFeedbackReceivedTask(feedback.ID.Hex())
	if err != nil {
		log.Println("failed to build notification task:", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("failed to enqueue notification task:", err)
	}
}

// GetFeedbacksForProfile lists feedback received by a profile, newest
// first, for the owner dashboard.
func GetFeedbacksForProfile(ctx context.Context, profileID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{"profileId": profileID}

	total, err := database.FeedbackCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	order := -1
	if params.Order == "asc" {
		order = 1
	}
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	opts := options.Find().
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: sortBy, Value: order}})

	cursor, err := database.FeedbackCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := []models.Feedback{}
	if err = cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(feedbacks, total, params), nil
}

// SetVisibility toggles whether a feedback entry shows on the public
// profile. Scoped to the owning profile.
func SetVisibility(ctx context.Context, profileID, feedbackID primitive.ObjectID, visible bool) error {
	result, err := database.FeedbackCollection.UpdateOne(ctx,
		bson.M{"_id": feedbackID, "profileId": profileID},
		bson.M{"$set": bson.M{"isVisible": visible, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

// UpdateContent edits the free-text body of a received feedback entry.
func UpdateContent(ctx context.Context, profileID, feedbackID primitive.ObjectID, content string) error {
	result, err := database.FeedbackCollection.UpdateOne(ctx,
		bson.M{"_id": feedbackID, "profileId": profileID},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

// DeleteFeedback removes a received entry. Scoped to the owning profile.
func DeleteFeedback(ctx context.Context, profileID, feedbackID primitive.ObjectID) error {
	result, err := database.FeedbackCollection.DeleteOne(ctx,
		bson.M{"_id": feedbackID, "profileId": profileID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

// GetFeedbackByID fetches one entry by primary key.
func GetFeedbackByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := database.FeedbackCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFeedbackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// TypeCountItem is one row of the dashboard summary.
type TypeCountItem struct {
	FeedbackTypeID string `json:"feedbackTypeId" bson:"feedbackTypeId"`
	Count          int64  `json:"count" bson:"count"`
}

// GetProfileSummary aggregates received feedback counts per type.
func GetProfileSummary(ctx context.Context, profileID primitive.ObjectID) ([]TypeCountItem, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"profileId": profileID}},
		{"$group": bson.M{
			"_id":   "$feedbackTypeId",
			"count": bson.M{"$sum": 1},
		}},
		{"$project": bson.M{
			"feedbackTypeId": bson.M{"$toString": "$_id"},
			"count":          1,
		}},
	}

	cur, err := database.FeedbackCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []TypeCountItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportFeedbacks returns every entry for a profile, oldest first. Used by
// the API-key export endpoint.
func ExportFeedbacks(ctx context.Context, profileID primitive.ObjectID) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.FeedbackCollection.Find(ctx, bson.M{"profileId": profileID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := []models.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
