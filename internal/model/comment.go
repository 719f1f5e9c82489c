package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is read by the mention notifier to resolve the mention list
// of a comment event.
type Comment struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	TaskID    primitive.ObjectID   `bson:"task_id" json:"task_id"`
	AuthorID  primitive.ObjectID   `bson:"author_id" json:"author_id"`
	Body      string               `bson:"body" json:"body"`
	Mentions  []primitive.ObjectID `bson:"mentions,omitempty" json:"mentions,omitempty"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
}
