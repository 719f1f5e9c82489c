package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/notifier/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

const collectionName = "users"

// Repository provides read access to the users collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new user repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// GetByID retrieves a single user by ID.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var u model.User

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
