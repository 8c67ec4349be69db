package jobs

import (
	"Backend-Props/src/database"
	"log"
	"os"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server in a goroutine. Called from main after
// Redis is initialized; does nothing when Redis is absent.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("Redis not available, background worker disabled")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     database.RedisURI,
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFeedbackReceived, HandleFeedbackReceivedTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("asynq worker stopped:", err)
		}
	}()
}
