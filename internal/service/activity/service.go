// Package activity turns comment, mention and task-update events into
// notifications, and backs the in-app unread/read surface. Events are
// one-shot: unlike reminders there is no dedup ledger, every event
// writes immediately.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/model"
	commentrepo "github.com/taskhive/notifier/internal/repository/comment"
	taskrepo "github.com/taskhive/notifier/internal/repository/task"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/activity/mock.go -package=mocks

type taskRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error)
}

type commentRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Comment, error)
}

type userRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

type notificationRepository interface {
	InsertMany(ctx context.Context, notifications []model.Notification) ([]model.Notification, error)
	ListUnreadByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Notification, error)
	MarkRead(ctx context.Context, ids []primitive.ObjectID) error
	MarkSent(ctx context.Context, ids []primitive.ObjectID) error
}

// CommentEvent describes a freshly created comment.
type CommentEvent struct {
	TaskID         primitive.ObjectID
	CommentID      primitive.ObjectID
	AuthorID       primitive.ObjectID
	Body           string
	ExcludeUserIDs []primitive.ObjectID
}

// MentionEvent points at a comment whose mention list should be
// notified.
type MentionEvent struct {
	TaskID    primitive.ObjectID
	CommentID primitive.ObjectID
	AuthorID  primitive.ObjectID
}

// UnreadNotification is a notification joined with its task's title
// for the in-app list.
type UnreadNotification struct {
	model.Notification
	TaskTitle string `json:"task_title"`
}

type Service struct {
	tasks         taskRepository
	comments      commentRepository
	users         userRepository
	notifications notificationRepository
	now           func() time.Time
}

// NewService creates an activity notifier over the given stores.
func NewService(
	tasks taskRepository,
	comments commentRepository,
	users userRepository,
	notifications notificationRepository,
) *Service {
	return &Service{
		tasks:         tasks,
		comments:      comments,
		users:         users,
		notifications: notifications,
		now:           time.Now,
	}
}

// CreateCommentNotifications notifies the task's assignees and its
// creator about a new comment. ExcludeUserIDs is accepted but not
// applied to the write set; only the author is excluded.
func (s *Service) CreateCommentNotifications(ctx context.Context, ev CommentEvent) ([]model.Notification, error) {
	task, err := s.tasks.GetByID(ctx, ev.TaskID)
	if errors.Is(err, taskrepo.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	recipients := recipients(ev.AuthorID, append(task.AssignedTeamMembers, task.CreatedBy)...)
	if len(recipients) == 0 {
		return nil, nil
	}

	message := fmt.Sprintf("%s commented on %q: %s", s.authorName(ctx, ev.AuthorID), task.Title, ev.Body)

	now := s.now()
	staged := make([]model.Notification, 0, len(recipients))
	for _, userID := range recipients {
		staged = append(staged, model.NewComment(userID, task.ID, message, now))
	}

	return s.notifications.InsertMany(ctx, staged)
}

// CreateMentionNotifications notifies every user mentioned in the
// comment, except the author. Returns an empty result if the comment
// or the task no longer exists.
func (s *Service) CreateMentionNotifications(ctx context.Context, ev MentionEvent) ([]model.Notification, error) {
	comment, err := s.comments.GetByID(ctx, ev.CommentID)
	if errors.Is(err, commentrepo.ErrCommentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	task, err := s.tasks.GetByID(ctx, ev.TaskID)
	if errors.Is(err, taskrepo.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	recipients := recipients(ev.AuthorID, comment.Mentions...)
	if len(recipients) == 0 {
		return nil, nil
	}

	message := fmt.Sprintf("%s mentioned you in a comment on %q", s.authorName(ctx, ev.AuthorID), task.Title)

	now := s.now()
	staged := make([]model.Notification, 0, len(recipients))
	for _, userID := range recipients {
		staged = append(staged, model.NewMention(userID, task.ID, message, now))
	}

	return s.notifications.InsertMany(ctx, staged)
}

// CreateUpdateNotifications notifies the task's assignees, except the
// user who made the change.
func (s *Service) CreateUpdateNotifications(ctx context.Context, taskID, authorID primitive.ObjectID) ([]model.Notification, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if errors.Is(err, taskrepo.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	recipients := recipients(authorID, task.AssignedTeamMembers...)
	if len(recipients) == 0 {
		return nil, nil
	}

	message := fmt.Sprintf("Task %q was updated", task.Title)

	now := s.now()
	staged := make([]model.Notification, 0, len(recipients))
	for _, userID := range recipients {
		staged = append(staged, model.NewUpdate(userID, task.ID, message, now))
	}

	return s.notifications.InsertMany(ctx, staged)
}

// GetUnreadNotifications returns a user's unread notifications, most
// imminent first, each joined with its task's title. A notification
// whose task is gone keeps an empty title rather than dropping out.
func (s *Service) GetUnreadNotifications(ctx context.Context, userID primitive.ObjectID) ([]UnreadNotification, error) {
	notifications, err := s.notifications.ListUnreadByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}

	out := make([]UnreadNotification, 0, len(notifications))
	for _, n := range notifications {
		title := ""
		if task, err := s.tasks.GetByID(ctx, n.TaskID); err == nil {
			title = task.Title
		}

		out = append(out, UnreadNotification{Notification: n, TaskTitle: title})
	}

	return out, nil
}

// MarkNotificationsAsRead flips read=true for the given IDs.
func (s *Service) MarkNotificationsAsRead(ctx context.Context, ids []primitive.ObjectID) error {
	if err := s.notifications.MarkRead(ctx, ids); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}

	return nil
}

// MarkNotificationsAsSent flips sent=true for the given IDs.
func (s *Service) MarkNotificationsAsSent(ctx context.Context, ids []primitive.ObjectID) error {
	if err := s.notifications.MarkSent(ctx, ids); err != nil {
		return fmt.Errorf("mark notifications sent: %w", err)
	}

	return nil
}

func (s *Service) authorName(ctx context.Context, authorID primitive.ObjectID) string {
	if u, err := s.users.GetByID(ctx, authorID); err == nil && u.Name != "" {
		return u.Name
	}

	return "Someone"
}

// recipients deduplicates ids preserving order, dropping the excluded
// user and zero values.
func recipients(exclude primitive.ObjectID, ids ...primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))

	for _, id := range ids {
		if id == exclude || id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
