package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	UserCollection         *mongo.Collection
	ProfileCollection      *mongo.Collection
	EmailCollection        *mongo.Collection
	FeedbackTypeCollection *mongo.Collection
	FeedbackCollection     *mongo.Collection
	ApiKeyCollection       *mongo.Collection
)

const dbName = "PropsDB"

// ConnectMongoDB connects once and wires up the collection handles.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			return
		}

		UserCollection = GetCollection(dbName, "users")
		ProfileCollection = GetCollection(dbName, "profiles")
		EmailCollection = GetCollection(dbName, "user_emails")
		FeedbackTypeCollection = GetCollection(dbName, "feedback_types")
		FeedbackCollection = GetCollection(dbName, "feedbacks")
		ApiKeyCollection = GetCollection(dbName, "api_keys")

		log.Println("MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
