// Package reminder evaluates open tasks against their reminder
// schedules and stages reminder and overdue notifications, skipping
// any that were already created on a previous run.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type taskRepository interface {
	ListOpen(ctx context.Context) ([]model.Task, error)
}

type notificationRepository interface {
	ReminderExists(ctx context.Context, userID, taskID primitive.ObjectID, offsetMinutes int) (bool, error)
	OverdueExists(ctx context.Context, userID, taskID primitive.ObjectID) (bool, error)
	InsertMany(ctx context.Context, notifications []model.Notification) ([]model.Notification, error)
}

// graceWindow is how long after its computed fire time a reminder is
// still considered due, inclusive at the boundary. Sized for a
// one-minute trigger cadence; the two must be revisited together.
const graceWindow = 10 * time.Minute

type Service struct {
	tasks         taskRepository
	notifications notificationRepository
	now           func() time.Time
}

// NewService creates a reminder evaluator over the given stores.
func NewService(tasks taskRepository, notifications notificationRepository) *Service {
	return &Service{
		tasks:         tasks,
		notifications: notifications,
		now:           time.Now,
	}
}

// CheckAndCreateReminders scans the open tasks, stages every reminder
// whose fire time falls inside the grace window and every newly missed
// deadline, filters out notifications that already exist, and inserts
// the remainder in a single write. It returns the inserted records.
//
// The existence checks assume a single evaluator instance; concurrent
// evaluators could insert duplicates.
func (s *Service) CheckAndCreateReminders(ctx context.Context) ([]model.Notification, error) {
	tasks, err := s.tasks.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}

	now := s.now()

	var staged []model.Notification

	for _, task := range tasks {
		offsets := task.EffectiveReminderOffsets()
		if task.Deadline == nil || len(offsets) == 0 || len(task.AssignedTeamMembers) == 0 {
			continue
		}

		deadline := *task.Deadline

		for _, offset := range offsets {
			reminderTime := deadline.Add(-time.Duration(offset) * time.Minute)

			elapsed := now.Sub(reminderTime)
			if elapsed < 0 || elapsed > graceWindow {
				continue
			}

			message := reminderMessage(task.Title, offset)

			for _, userID := range task.AssignedTeamMembers {
				exists, err := s.notifications.ReminderExists(ctx, userID, task.ID, offset)
				if err != nil {
					return nil, fmt.Errorf("check reminder notification: %w", err)
				}
				if exists {
					continue
				}

				staged = append(staged, model.NewReminder(userID, task.ID, offset, message, reminderTime, now))
			}
		}

		if now.After(deadline) {
			message := overdueMessage(task.Title)

			for _, userID := range task.AssignedTeamMembers {
				exists, err := s.notifications.OverdueExists(ctx, userID, task.ID)
				if err != nil {
					return nil, fmt.Errorf("check overdue notification: %w", err)
				}
				if exists {
					continue
				}

				staged = append(staged, model.NewOverdue(userID, task.ID, message, deadline, now))
			}
		}
	}

	if len(staged) == 0 {
		return nil, nil
	}

	inserted, err := s.notifications.InsertMany(ctx, staged)
	if err != nil {
		return nil, fmt.Errorf("insert notifications: %w", err)
	}

	zlog.Logger.Info().Int("count", len(inserted)).Msg("created due notifications")

	return inserted, nil
}

func reminderMessage(title string, offsetMinutes int) string {
	return fmt.Sprintf("Task %q is due in %s", title, humanDuration(offsetMinutes))
}

func overdueMessage(title string) string {
	return fmt.Sprintf("Task %q is now overdue!", title)
}

// humanDuration renders minutes as days when at least a day, hours
// when at least an hour, else minutes.
func humanDuration(minutes int) string {
	switch {
	case minutes >= 1440:
		return pluralize(minutes/1440, "day")
	case minutes >= 60:
		return pluralize(minutes/60, "hour")
	default:
		return pluralize(minutes, "minute")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
