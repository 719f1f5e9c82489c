// Package outbox drains the unsent, due notifications and delivers
// them by email, one independent item at a time.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/outbox/mock.go -package=mocks

type notificationRepository interface {
	ListDueUnsent(ctx context.Context, now time.Time) ([]model.Notification, error)
	MarkSent(ctx context.Context, ids []primitive.ObjectID) error
}

type taskRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error)
}

type userRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

// Mailer is the outgoing mail transport.
type Mailer interface {
	Send(to, subject, html string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type Service struct {
	notifications notificationRepository
	tasks         taskRepository
	users         userRepository
	mailer        Mailer
	cache         cache
	retry         retry.Strategy
	now           func() time.Time
}

// NewService creates an outbox sender over the given stores and mail
// transport.
func NewService(
	notifications notificationRepository,
	tasks taskRepository,
	users userRepository,
	mailer Mailer,
	cache cache,
	strategy retry.Strategy,
) *Service {
	return &Service{
		notifications: notifications,
		tasks:         tasks,
		users:         users,
		mailer:        mailer,
		cache:         cache,
		retry:         strategy,
		now:           time.Now,
	}
}

// SendPendingEmails delivers every due, unsent, emailable notification
// and returns the IDs it marked sent. A notification is marked sent
// only after its transport call succeeded; a failed or skipped item is
// left unsent for the next run and never aborts the rest of the batch.
func (s *Service) SendPendingEmails(ctx context.Context) ([]primitive.ObjectID, error) {
	due, err := s.notifications.ListDueUnsent(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list due notifications: %w", err)
	}

	var sent []primitive.ObjectID

	for _, n := range due {
		email, err := s.recipientEmail(ctx, n.UserID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("notification", n.ID.Hex()).Msg("skipping notification: recipient unresolved")
			continue
		}
		if email == "" {
			zlog.Logger.Warn().Str("notification", n.ID.Hex()).Str("user", n.UserID.Hex()).Msg("skipping notification: recipient has no email")
			continue
		}

		task, err := s.tasks.GetByID(ctx, n.TaskID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("notification", n.ID.Hex()).Msg("skipping notification: task unresolved")
			continue
		}
		if task.Status == model.StatusDone {
			// stale: the work finished before the email went out
			continue
		}

		subject, body := renderEmail(n, task)

		err = retry.Do(func() error {
			return s.mailer.Send(email, subject, body)
		}, s.retry)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("notification", n.ID.Hex()).Msg("failed to send notification email")
			continue
		}

		if err := s.notifications.MarkSent(ctx, []primitive.ObjectID{n.ID}); err != nil {
			return sent, fmt.Errorf("mark notification sent: %w", err)
		}

		sent = append(sent, n.ID)
	}

	return sent, nil
}

// recipientEmail resolves a user's email address, cache-aside through
// redis. An existing user without an email resolves to "".
func (s *Service) recipientEmail(ctx context.Context, userID primitive.ObjectID) (string, error) {
	key := "user:email:" + userID.Hex()

	email, err := s.cache.GetWithRetry(ctx, s.retry, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("user", userID.Hex()).Msg("failed to read email from cache")
	}
	if err == nil && email != "" {
		return email, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user %s: %w", userID.Hex(), err)
	}
	if user.Email == "" {
		return "", nil
	}

	if err := s.cache.SetWithRetry(ctx, s.retry, key, user.Email); err != nil {
		zlog.Logger.Warn().Err(err).Str("user", userID.Hex()).Msg("failed to cache email")
	}

	return user.Email, nil
}
