package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType discriminates the notification document. Fields
// that only apply to one variant (ReminderOffset) are set by the
// corresponding constructor and nil everywhere else.
type NotificationType string

const (
	TypeReminder NotificationType = "reminder"
	TypeOverdue  NotificationType = "overdue"
	TypeComment  NotificationType = "comment"
	TypeMention  NotificationType = "mention"
	TypeUpdate   NotificationType = "update"
)

// EmailableTypes are the variants the outbox delivers by email; the
// rest surface in-app only.
var EmailableTypes = []NotificationType{TypeReminder, TypeOverdue, TypeUpdate}

// Emailable reports whether the outbox sender delivers this type.
func (t NotificationType) Emailable() bool {
	for _, e := range EmailableTypes {
		if t == e {
			return true
		}
	}
	return false
}

// Notification is the engine's core mutable entity. Sent and Read only
// ever flip false to true; records are never deleted by the engine.
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	TaskID         primitive.ObjectID `bson:"task_id" json:"task_id"`
	Type           NotificationType   `bson:"type" json:"type"`
	Message        string             `bson:"message" json:"message"`
	ReminderOffset *int               `bson:"reminder_offset,omitempty" json:"reminder_offset,omitempty"`
	ScheduledFor   time.Time          `bson:"scheduled_for" json:"scheduled_for"`
	Read           bool               `bson:"read" json:"read"`
	Sent           bool               `bson:"sent" json:"sent"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// NewReminder builds a reminder notification for one offset of one
// task. scheduledFor is the computed fire time (deadline minus offset).
func NewReminder(userID, taskID primitive.ObjectID, offsetMinutes int, message string, scheduledFor, createdAt time.Time) Notification {
	offset := offsetMinutes
	return Notification{
		UserID:         userID,
		TaskID:         taskID,
		Type:           TypeReminder,
		Message:        message,
		ReminderOffset: &offset,
		ScheduledFor:   scheduledFor,
		CreatedAt:      createdAt,
	}
}

// NewOverdue builds an overdue notice; scheduledFor is the missed
// deadline.
func NewOverdue(userID, taskID primitive.ObjectID, message string, deadline, createdAt time.Time) Notification {
	return Notification{
		UserID:       userID,
		TaskID:       taskID,
		Type:         TypeOverdue,
		Message:      message,
		ScheduledFor: deadline,
		CreatedAt:    createdAt,
	}
}

// NewComment builds an in-app comment notice.
func NewComment(userID, taskID primitive.ObjectID, message string, createdAt time.Time) Notification {
	return Notification{
		UserID:       userID,
		TaskID:       taskID,
		Type:         TypeComment,
		Message:      message,
		ScheduledFor: createdAt,
		CreatedAt:    createdAt,
	}
}

// NewMention builds an in-app mention notice.
func NewMention(userID, taskID primitive.ObjectID, message string, createdAt time.Time) Notification {
	return Notification{
		UserID:       userID,
		TaskID:       taskID,
		Type:         TypeMention,
		Message:      message,
		ScheduledFor: createdAt,
		CreatedAt:    createdAt,
	}
}

// NewUpdate builds a task-updated notice; it is due for email
// immediately.
func NewUpdate(userID, taskID primitive.ObjectID, message string, createdAt time.Time) Notification {
	return Notification{
		UserID:       userID,
		TaskID:       taskID,
		Type:         TypeUpdate,
		Message:      message,
		ScheduledFor: createdAt,
		CreatedAt:    createdAt,
	}
}
