package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artisty/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepo struct {
	collection *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{collection: database.Collection("user")}
}

// UpsertByEmail creates the account on first login and refreshes the profile
// fields on every later login with the same email.
func (r *mongoRepo) UpsertByEmail(ctx context.Context, u domain.User) (*domain.User, error) {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":      u.Name,
			"image":     u.Image,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       u.ID,
			"email":     u.Email,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out domain.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": u.Email}, update, opts).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &out, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &out, nil
}
