package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/introbot/chatbot-server/internal/model"
)

const usersCollection = "users"

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Gateway
}

func NewUserRepository(db *Gateway) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts one user record and returns the store-assigned ID.
func (r *UserRepository) Create(ctx context.Context, user model.User) (string, error) {
	coll, err := r.db.Collection(ctx, usersCollection)
	if err != nil {
		return "", fmt.Errorf("failed to get users collection: %w", err)
	}

	result, err := coll.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// List returns every user record in the collection's natural order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	coll, err := r.db.Collection(ctx, usersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to get users collection: %w", err)
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}
