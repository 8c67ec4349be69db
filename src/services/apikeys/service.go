package apikeys

import (
	"Backend-Props/src/database"
	"Backend-Props/src/models"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrApiKeyNotFound = errors.New("api key not found")
	ErrInvalidApiKey  = errors.New("invalid api key")
)

const keyPrefix = "pk_"

// GenerateKey produces fresh key material. Only the digest is stored; the
// plaintext goes back to the caller once.
func GenerateKey() string {
	raw := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	return keyPrefix + raw
}

// HashKey is the stored form of a key.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// MaskKey is the listing form: prefix plus the first few characters.
func MaskKey(key string) string {
	if len(key) <= len(keyPrefix)+4 {
		return key
	}
	return key[:len(keyPrefix)+4] + strings.Repeat("•", 20)
}

// CreateApiKey stores a new key for the profile and returns the record
// together with the plaintext key.
func CreateApiKey(ctx context.Context, profileID primitive.ObjectID, name string) (*models.ApiKey, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", models.NewValidationError("name", "API key name is required")
	}

	key := GenerateKey()
	record := &models.ApiKey{
		ID:        primitive.NewObjectID(),
		ProfileID: profileID,
		Name:      name,
		KeyHash:   HashKey(key),
		Prefix:    MaskKey(key),
		CreatedAt: time.Now(),
	}

	if _, err := database.ApiKeyCollection.InsertOne(ctx, record); err != nil {
		return nil, "", err
	}
	return record, key, nil
}

// GetApiKeysForProfile lists a profile's keys, newest first, masked.
func GetApiKeysForProfile(ctx context.Context, profileID primitive.ObjectID) ([]models.ApiKey, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.ApiKeyCollection.Find(ctx, bson.M{"profileId": profileID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	keys := []models.ApiKey{}
	if err := cursor.All(ctx, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// DeleteApiKey revokes an owned key.
func DeleteApiKey(ctx context.Context, profileID, keyID primitive.ObjectID) error {
	result, err := database.ApiKeyCollection.DeleteOne(ctx,
		bson.M{"_id": keyID, "profileId": profileID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrApiKeyNotFound
	}
	return nil
}

// VerifyKey resolves plaintext key material to the owning profile and
// stamps last-used. Expired keys are rejected.
func VerifyKey(ctx context.Context, key string) (primitive.ObjectID, error) {
	var record models.ApiKey
	err := database.ApiKeyCollection.FindOne(ctx, bson.M{"keyHash": HashKey(key)}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return primitive.NilObjectID, ErrInvalidApiKey
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	if record.ExpiresAt != nil && record.ExpiresAt.Before(time.Now()) {
		return primitive.NilObjectID, ErrInvalidApiKey
	}

	now := time.Now()
	_, _ = database.ApiKeyCollection.UpdateOne(ctx,
		bson.M{"_id": record.ID},
		bson.M{"$set": bson.M{"lastUsed": now}})

	return record.ProfileID, nil
}
