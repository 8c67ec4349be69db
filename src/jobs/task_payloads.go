package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeFeedbackReceived = "feedback:received"

type FeedbackPayload struct {
	FeedbackID string `json:"feedback_id"`
}

func NewFeedbackReceivedTask(feedbackID string) (*asynq.Task, error) {
	payload, err := json.Marshal(FeedbackPayload{FeedbackID: feedbackID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFeedbackReceived, payload), nil
}
