package jobs

import (
	"Backend-Props/src/database"
	"Backend-Props/src/models"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleFeedbackReceivedTask notifies a profile owner about a new
// submission. A feedback or profile deleted before the task runs is not an
// error; the task is simply dropped.
func HandleFeedbackReceivedTask(ctx context.Context, t *asynq.Task) error {
	var payload FeedbackPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.FeedbackID)
	if err != nil {
		return err
	}

	var feedback models.Feedback
	err = database.FeedbackCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("feedback deleted before notification, skipping:", id.Hex())
			return nil
		}
		return err
	}

	var profile models.Profile
	err = database.ProfileCollection.FindOne(ctx, bson.M{"_id": feedback.ProfileID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("profile gone, skipping notification:", feedback.ProfileID.Hex())
			return nil
		}
		return err
	}

	sender := "anonymous"
	if feedback.SenderID != nil {
		sender = feedback.SenderID.Hex()
	}
	log.Printf("[notify] %s received feedback %s from %s", profile.Username, feedback.ID.Hex(), sender)

	return nil
}
