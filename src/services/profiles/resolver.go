package profiles

import (
	"Backend-Props/src/database"
	"Backend-Props/src/models"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrProfileNotFound means the identifier matches nothing. Callers render
// it as a 404; every other resolver error is a data-access failure.
var ErrProfileNotFound = errors.New("profile not found")

// lookupFunc tries one way of mapping an identifier to a profile. A
// (nil, nil) return means "no match here, try the next lookup"; a non-nil
// error aborts the chain.
type lookupFunc func(ctx context.Context, identifier string) (*models.Profile, error)

// Resolver maps a public identifier to its owning profile through an
// ordered lookup chain with short-circuit on first hit. Precedence:
// profile handle, then registered account email, then alternate address
// (with display overrides merged in). Resolution is read-only and runs
// fresh on every request; nothing is cached across identifiers.
type Resolver struct {
	chain []lookupFunc
}

// NewResolver builds the resolver over the live collections.
func NewResolver() *Resolver {
	return &Resolver{chain: []lookupFunc{
		lookupByUsername,
		lookupByAccountEmail,
		lookupByAlternateEmail,
	}}
}

// Resolve returns the first profile the chain produces, or
// ErrProfileNotFound when every lookup misses.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*models.Profile, error) {
	for _, lookup := range r.chain {
		profile, err := lookup(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			return profile, nil
		}
	}
	return nil, ErrProfileNotFound
}

// ResolveIdentifier resolves against the live database.
func ResolveIdentifier(ctx context.Context, identifier string) (*models.Profile, error) {
	return NewResolver().Resolve(ctx, identifier)
}

func lookupByUsername(ctx context.Context, identifier string) (*models.Profile, error) {
	var profile models.Profile
	err := database.ProfileCollection.FindOne(ctx, bson.M{"username": identifier}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func lookupByAccountEmail(ctx context.Context, identifier string) (*models.Profile, error) {
	var profile models.Profile
	err := database.ProfileCollection.FindOne(ctx, bson.M{"email": identifier}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func lookupByAlternateEmail(ctx context.Context, identifier string) (*models.Profile, error) {
	var email models.UserEmail
	err := database.EmailCollection.FindOne(ctx, bson.M{"email": identifier}).Decode(&email)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	err = database.ProfileCollection.FindOne(ctx, bson.M{"_id": email.ProfileID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		// dangling address, treat as a chain miss
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	merged := MergeOverrides(&profile, &email)
	return merged, nil
}

// MergeOverrides returns the profile with the address's non-empty display
// fields substituted. The input profile is not mutated.
func MergeOverrides(profile *models.Profile, email *models.UserEmail) *models.Profile {
	merged := *profile
	if email.DisplayName != "" {
		merged.DisplayName = email.DisplayName
	}
	if email.Bio != "" {
		merged.Bio = email.Bio
	}
	if email.AvatarURL != "" {
		merged.AvatarURL = email.AvatarURL
	}
	return &merged
}
