package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/taskhive/notifier/internal/model"
)

const ns = "taskhive.notifications"

func TestRepository_ReminderExists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	mt.Run("found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: userID},
			{Key: "task_id", Value: taskID},
			{Key: "type", Value: model.TypeReminder},
			{Key: "reminder_offset", Value: 1440},
		}))

		exists, err := repo.ReminderExists(context.Background(), userID, taskID, 1440)
		require.NoError(mt, err)
		assert.True(mt, exists)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		filter := evt.Command.Lookup("filter").Document()
		assert.Equal(mt, string(model.TypeReminder), filter.Lookup("type").StringValue())

		offset, ok := filter.Lookup("reminder_offset").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(1440), offset)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		exists, err := repo.ReminderExists(context.Background(), userID, taskID, 1440)
		require.NoError(mt, err)
		assert.False(mt, exists)
	})
}

func TestRepository_OverdueExists_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		exists, err := repo.OverdueExists(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.False(mt, exists)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)

		filter := evt.Command.Lookup("filter").Document()
		assert.Equal(mt, string(model.TypeOverdue), filter.Lookup("type").StringValue())
	})
}

func TestRepository_ListDueUnsent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns due notifications", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		now := time.Now().UTC().Truncate(time.Millisecond)
		reminder := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: primitive.NewObjectID()},
			{Key: "task_id", Value: primitive.NewObjectID()},
			{Key: "type", Value: model.TypeReminder},
			{Key: "message", Value: `Task "Demo" is due in 1 day`},
			{Key: "sent", Value: false},
			{Key: "scheduled_for", Value: primitive.NewDateTimeFromTime(now.Add(-time.Minute))},
		}
		overdue := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: primitive.NewObjectID()},
			{Key: "task_id", Value: primitive.NewObjectID()},
			{Key: "type", Value: model.TypeOverdue},
			{Key: "message", Value: `Task "Demo" is now overdue!`},
			{Key: "sent", Value: false},
			{Key: "scheduled_for", Value: primitive.NewDateTimeFromTime(now.Add(-time.Hour))},
		}

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, reminder),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, overdue),
		)

		got, err := repo.ListDueUnsent(context.Background(), now)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, model.TypeReminder, got[0].Type)
		assert.Equal(mt, model.TypeOverdue, got[1].Type)
		assert.False(mt, got[0].Sent)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		filter := evt.Command.Lookup("filter").Document()
		assert.False(mt, filter.Lookup("sent").Boolean())

		in, err := filter.Lookup("type", "$in").Array().Values()
		require.NoError(mt, err)
		assert.Len(mt, in, len(model.EmailableTypes))

		_, ok := filter.Lookup("scheduled_for", "$lte").TimeOK()
		require.True(mt, ok)
	})
}

func TestRepository_MarkSent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("flips sent for the given ids", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.MarkSent(context.Background(), ids)
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)

		update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.True(mt, update.Lookup("u", "$set", "sent").Boolean())

		in, err := update.Lookup("q", "_id", "$in").Array().Values()
		require.NoError(mt, err)
		assert.Len(mt, in, len(ids))
	})
}

func TestRepository_MarkRead_EmptyIDs(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no-op on empty list", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		// No responses are queued, so any issued command would fail.
		err := repo.MarkRead(context.Background(), nil)
		require.NoError(mt, err)
	})
}
