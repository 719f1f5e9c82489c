package task

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/notifier/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

const collectionName = "tasks"

// Repository provides read access to the tasks collection. The engine
// never writes tasks.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new task repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// ListOpen retrieves every task whose status is not terminal. Finer
// eligibility filtering (deadline, offsets, assignees) is the
// evaluator's job.
func (r *Repository) ListOpen(ctx context.Context) ([]model.Task, error) {
	filter := bson.M{"status": bson.M{"$ne": model.StatusDone}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []model.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

// GetByID retrieves a single task by its ID.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error) {
	var task model.Task

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Task{}, ErrTaskNotFound
		}

		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}
