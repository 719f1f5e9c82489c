package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mocks "github.com/taskhive/notifier/internal/mocks/service/outbox"
	"github.com/taskhive/notifier/internal/model"
)

type outboxMocks struct {
	notifications *mocks.MocknotificationRepository
	tasks         *mocks.MocktaskRepository
	users         *mocks.MockuserRepository
	mailer        *mocks.MockMailer
	cache         *mocks.Mockcache
}

func setupService(t *testing.T, now time.Time) (*Service, outboxMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := outboxMocks{
		notifications: mocks.NewMocknotificationRepository(ctrl),
		tasks:         mocks.NewMocktaskRepository(ctrl),
		users:         mocks.NewMockuserRepository(ctrl),
		mailer:        mocks.NewMockMailer(ctrl),
		cache:         mocks.NewMockcache(ctrl),
	}

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	svc := NewService(m.notifications, m.tasks, m.users, m.mailer, m.cache, strategy)
	svc.now = func() time.Time { return now }

	return svc, m
}

func dueReminder(userID primitive.ObjectID, scheduledFor time.Time) model.Notification {
	offset := 30
	return model.Notification{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		TaskID:         primitive.NewObjectID(),
		Type:           model.TypeReminder,
		Message:        `Task "Demo" is due in 30 minutes`,
		ReminderOffset: &offset,
		ScheduledFor:   scheduledFor,
	}
}

func TestSendPendingEmails_NothingDue(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return(nil, nil)

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestSendPendingEmails_SendsAndMarksSent(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	userID := primitive.NewObjectID()
	n := dueReminder(userID, now.Add(-time.Second))
	task := model.Task{ID: n.TaskID, Title: "Demo", Status: model.StatusInProgress}

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return([]model.Notification{n}, nil)
	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), "user:email:"+userID.Hex()).Return("", redis.Nil)
	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(model.User{ID: userID, Name: "Ann", Email: "ann@example.com"}, nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), "user:email:"+userID.Hex(), "ann@example.com").Return(nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), n.TaskID).Return(task, nil)
	m.mailer.EXPECT().Send("ann@example.com", "Reminder: Demo due soon", gomock.Any()).Return(nil)
	m.notifications.EXPECT().MarkSent(gomock.Any(), []primitive.ObjectID{n.ID}).Return(nil)

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{n.ID}, sent)
}

func TestSendPendingEmails_TransportFailureIsIsolated(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	firstUser := primitive.NewObjectID()
	secondUser := primitive.NewObjectID()
	first := dueReminder(firstUser, now.Add(-time.Minute))
	second := dueReminder(secondUser, now.Add(-time.Minute))

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return([]model.Notification{first, second}, nil)

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), "user:email:"+firstUser.Hex()).Return("a@example.com", nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), first.TaskID).Return(model.Task{ID: first.TaskID, Title: "A", Status: model.StatusToDo}, nil)
	m.mailer.EXPECT().Send("a@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp: connection refused"))

	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), "user:email:"+secondUser.Hex()).Return("b@example.com", nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), second.TaskID).Return(model.Task{ID: second.TaskID, Title: "B", Status: model.StatusToDo}, nil)
	m.mailer.EXPECT().Send("b@example.com", gomock.Any(), gomock.Any()).Return(nil)
	m.notifications.EXPECT().MarkSent(gomock.Any(), []primitive.ObjectID{second.ID}).Return(nil)

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{second.ID}, sent)
}

func TestSendPendingEmails_SkipsRecipientWithoutEmail(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	userID := primitive.NewObjectID()
	n := dueReminder(userID, now.Add(-time.Minute))

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return([]model.Notification{n}, nil)
	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(model.User{ID: userID, Name: "No Mail"}, nil)

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestSendPendingEmails_SkipsMissingRecipient(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	userID := primitive.NewObjectID()
	n := dueReminder(userID, now.Add(-time.Minute))

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return([]model.Notification{n}, nil)
	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("", redis.Nil)
	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(model.User{}, errors.New("user not found"))

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestSendPendingEmails_SkipsDoneTask(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	userID := primitive.NewObjectID()
	n := dueReminder(userID, now.Add(-time.Minute))

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return([]model.Notification{n}, nil)
	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).Return("ann@example.com", nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), n.TaskID).Return(model.Task{ID: n.TaskID, Title: "Done already", Status: model.StatusDone}, nil)

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestSendPendingEmails_CacheHitSkipsUserLookup(t *testing.T) {
	now := time.Now()
	svc, m := setupService(t, now)

	userID := primitive.NewObjectID()
	n := dueReminder(userID, now.Add(-time.Minute))

	m.notifications.EXPECT().ListDueUnsent(gomock.Any(), now).Return([]model.Notification{n}, nil)
	m.cache.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), "user:email:"+userID.Hex()).Return("cached@example.com", nil)
	m.tasks.EXPECT().GetByID(gomock.Any(), n.TaskID).Return(model.Task{ID: n.TaskID, Title: "Cached", Status: model.StatusToDo}, nil)
	m.mailer.EXPECT().Send("cached@example.com", gomock.Any(), gomock.Any()).Return(nil)
	m.notifications.EXPECT().MarkSent(gomock.Any(), []primitive.ObjectID{n.ID}).Return(nil)

	sent, err := svc.SendPendingEmails(context.Background())
	require.NoError(t, err)
	assert.Len(t, sent, 1)
}

func TestRenderEmail(t *testing.T) {
	task := model.Task{Title: "Launch checklist"}

	t.Run("reminder", func(t *testing.T) {
		subject, body := renderEmail(model.Notification{Type: model.TypeReminder, Message: "due in 1 hour"}, task)
		assert.Equal(t, "Reminder: Launch checklist due soon", subject)
		assert.Contains(t, body, "<h2>Task Reminder</h2>")
		assert.Contains(t, body, "due in 1 hour")
	})

	t.Run("overdue", func(t *testing.T) {
		subject, body := renderEmail(model.Notification{Type: model.TypeOverdue, Message: "overdue!"}, task)
		assert.Equal(t, "Overdue: Launch checklist", subject)
		assert.Contains(t, body, "<h2>Task Overdue</h2>")
	})

	t.Run("update", func(t *testing.T) {
		subject, body := renderEmail(model.Notification{Type: model.TypeUpdate}, task)
		assert.Equal(t, "Update: Launch checklist", subject)
		assert.Contains(t, body, "<h2>Task Updated</h2>")
		// empty message renders as an empty paragraph, never a literal placeholder
		assert.Contains(t, body, "<p></p>")
	})

	t.Run("message is escaped", func(t *testing.T) {
		_, body := renderEmail(model.Notification{Type: model.TypeReminder, Message: "<script>"}, task)
		assert.NotContains(t, body, "<script>")
	})
}
