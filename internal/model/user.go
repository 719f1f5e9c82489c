package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is read by the engine only to resolve recipient names and email
// addresses. A user without an email address is never emailed.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
