package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhive/notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

const collectionName = "notifications"

// Repository provides methods to interact with the notifications
// collection. It is both the idempotency ledger (existence checks
// before insert) and the outbox (unsent records drained by the
// sender).
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new notification repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// InsertMany inserts the given notifications in one write and returns
// them with their assigned IDs. A nil or empty batch performs no write.
func (r *Repository) InsertMany(ctx context.Context, notifications []model.Notification) ([]model.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	docs := make([]interface{}, 0, len(notifications))
	for i := range notifications {
		docs = append(docs, notifications[i])
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert notifications: %w", err)
	}

	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			notifications[i].ID = oid
		}
	}

	return notifications, nil
}

// ReminderExists reports whether a reminder notification already
// exists for the (user, task, offset) triple.
func (r *Repository) ReminderExists(ctx context.Context, userID, taskID primitive.ObjectID, offsetMinutes int) (bool, error) {
	filter := bson.M{
		"user_id":         userID,
		"task_id":         taskID,
		"type":            model.TypeReminder,
		"reminder_offset": offsetMinutes,
	}

	return r.exists(ctx, filter)
}

// OverdueExists reports whether an overdue notification already exists
// for the (user, task) pair.
func (r *Repository) OverdueExists(ctx context.Context, userID, taskID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"user_id": userID,
		"task_id": taskID,
		"type":    model.TypeOverdue,
	}

	return r.exists(ctx, filter)
}

func (r *Repository) exists(ctx context.Context, filter bson.M) (bool, error) {
	err := r.coll.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}

	return true, nil
}

// ListDueUnsent retrieves the unsent emailable notifications whose
// scheduled time is at or before now.
func (r *Repository) ListDueUnsent(ctx context.Context, now time.Time) ([]model.Notification, error) {
	filter := bson.M{
		"sent":          false,
		"type":          bson.M{"$in": model.EmailableTypes},
		"scheduled_for": bson.M{"$lte": now},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list due notifications: %w", err)
	}
	defer cur.Close(ctx)

	var notifications []model.Notification
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return notifications, nil
}

// ListUnreadByUser retrieves a user's unread notifications ordered by
// scheduled time descending.
func (r *Repository) ListUnreadByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Notification, error) {
	filter := bson.M{"user_id": userID, "read": false}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_for", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	defer cur.Close(ctx)

	var notifications []model.Notification
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return notifications, nil
}

// DistinctUsersWithUnread returns the IDs of users who have at least
// one unread notification of the given type.
func (r *Repository) DistinctUsersWithUnread(ctx context.Context, typ model.NotificationType) ([]primitive.ObjectID, error) {
	filter := bson.M{"type": typ, "read": false}

	values, err := r.coll.Distinct(ctx, "user_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with unread notifications: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if oid, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}

	return ids, nil
}

// MarkSent flips sent=true for the given IDs. No-op on an empty list.
func (r *Repository) MarkSent(ctx context.Context, ids []primitive.ObjectID) error {
	return r.setFlag(ctx, ids, "sent")
}

// MarkRead flips read=true for the given IDs. No-op on an empty list.
func (r *Repository) MarkRead(ctx context.Context, ids []primitive.ObjectID) error {
	return r.setFlag(ctx, ids, "read")
}

func (r *Repository) setFlag(ctx context.Context, ids []primitive.ObjectID, field string) error {
	if len(ids) == 0 {
		return nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{field: true}}

	_, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark notifications %s: %w", field, err)
	}

	return nil
}
