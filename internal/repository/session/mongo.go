package session

import (
	"context"
	"errors"
	"fmt"

	"artisty/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRepo struct {
	collection *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{collection: database.Collection("session")}
}

func (r *mongoRepo) Create(ctx context.Context, s domain.Session) error {
	if _, err := r.collection.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *mongoRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	var out domain.Session
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &out, nil
}

func (r *mongoRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
