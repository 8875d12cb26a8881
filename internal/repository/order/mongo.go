package order

import (
	"context"
	"fmt"

	"artisty/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepo struct {
	collection *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{collection: database.Collection("orders")}
}

// Insert stores the order as a single document. The store's single-document
// insert is the only atomicity checkout relies on.
func (r *mongoRepo) Insert(ctx context.Context, order domain.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders sorted newest-first by creation time.
func (r *mongoRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
