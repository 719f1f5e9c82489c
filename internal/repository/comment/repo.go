package comment

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/notifier/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

const collectionName = "comments"

// Repository provides read access to the comments collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new comment repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// GetByID retrieves a single comment by ID.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Comment, error) {
	var c model.Comment

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, ErrCommentNotFound
		}

		return model.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}

	return c, nil
}
