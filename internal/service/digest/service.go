// Package digest sends the daily overdue summary: one email per user
// who still has unread overdue notifications. It never touches the
// outbox's sent flags; the digest is a courtesy summary on top of the
// per-notification emails.
package digest

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/digest/mock.go -package=mocks

type notificationRepository interface {
	DistinctUsersWithUnread(ctx context.Context, typ model.NotificationType) ([]primitive.ObjectID, error)
	ListUnreadByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Notification, error)
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

type Service struct {
	notifications notificationRepository
	tasks         taskRepository
	users         userRepository
	mailer        Mailer
	retry         retry.Strategy
}

// NewService creates a digest sender over the given stores and mail
// transport.
func NewService(
	notifications notificationRepository,
	tasks taskRepository,
	users userRepository,
	mailer Mailer,
	strategy retry.Strategy,
) *Service {
	return &Service{
		notifications: notifications,
		tasks:         tasks,
		users:         users,
		mailer:        mailer,
		retry:         strategy,
	}
}

// SendDailyDigest emails each user a summary of their still-unread
// overdue tasks and returns the number of digests delivered. Failures
// are isolated per user.
func (s *Service) SendDailyDigest(ctx context.Context) (int, error) {
	userIDs, err := s.notifications.DistinctUsersWithUnread(ctx, model.TypeOverdue)
	if err != nil {
		return 0, fmt.Errorf("list users with unread overdue notifications: %w", err)
	}

	sent := 0

	for _, userID := range userIDs {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("user", userID.Hex()).Msg("skipping digest: user unresolved")
			continue
		}
		if user.Email == "" {
			continue
		}

		titles, err := s.overdueTitles(ctx, userID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("user", userID.Hex()).Msg("skipping digest: notifications unresolved")
			continue
		}
		if len(titles) == 0 {
			continue
		}

		subject, body := renderDigest(titles)

		err = retry.Do(func() error {
			return s.mailer.Send(user.Email, subject, body)
		}, s.retry)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user", userID.Hex()).Msg("failed to send digest email")
			continue
		}

		sent++
	}

	return sent, nil
}

// overdueTitles collects the titles of the user's unread overdue
// tasks, dropping any whose task is gone or already finished.
func (s *Service) overdueTitles(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	notifications, err := s.notifications.ListUnreadByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var titles []string
	seen := make(map[primitive.ObjectID]struct{})

	for _, n := range notifications {
		if n.Type != model.TypeOverdue {
			continue
		}
		if _, ok := seen[n.TaskID]; ok {
			continue
		}
		seen[n.TaskID] = struct{}{}

		task, err := s.tasks.GetByID(ctx, n.TaskID)
		if err != nil || task.Status == model.StatusDone {
			continue
		}

		titles = append(titles, task.Title)
	}

	return titles, nil
}

func renderDigest(titles []string) (subject, body string) {
	if len(titles) == 1 {
		subject = "Daily digest: 1 overdue task"
	} else {
		subject = fmt.Sprintf("Daily digest: %d overdue tasks", len(titles))
	}

	var b strings.Builder
	b.WriteString("<h2>Overdue Tasks</h2><ul>")
	for _, title := range titles {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(title))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")

	return subject, b.String()
}
