package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeReminderOffsets(t *testing.T) {
	got := NormalizeReminderOffsets([]int{60, 1440, 60, 0, -30, 10080})
	assert.Equal(t, []int{10080, 1440, 60}, got)

	assert.Empty(t, NormalizeReminderOffsets(nil))
	assert.Empty(t, NormalizeReminderOffsets([]int{0, -1}))
}

func TestTask_EffectiveReminderOffsets(t *testing.T) {
	deadline := time.Now().Add(48 * time.Hour)

	noDeadline := Task{ReminderOffsets: []int{60}}
	assert.Nil(t, noDeadline.EffectiveReminderOffsets())

	defaulted := Task{Deadline: &deadline}
	assert.Equal(t, DefaultReminderOffsets, defaulted.EffectiveReminderOffsets())

	explicit := Task{Deadline: &deadline, ReminderOffsets: []int{30, 120, 30}}
	assert.Equal(t, []int{120, 30}, explicit.EffectiveReminderOffsets())
}

func TestNotificationConstructors(t *testing.T) {
	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()
	now := time.Now()

	reminder := NewReminder(userID, taskID, 1440, "msg", now.Add(-time.Minute), now)
	assert.Equal(t, TypeReminder, reminder.Type)
	if assert.NotNil(t, reminder.ReminderOffset) {
		assert.Equal(t, 1440, *reminder.ReminderOffset)
	}
	assert.False(t, reminder.Sent)
	assert.False(t, reminder.Read)

	overdue := NewOverdue(userID, taskID, "msg", now.Add(-time.Hour), now)
	assert.Equal(t, TypeOverdue, overdue.Type)
	assert.Nil(t, overdue.ReminderOffset)
	assert.Equal(t, now.Add(-time.Hour), overdue.ScheduledFor)

	comment := NewComment(userID, taskID, "msg", now)
	assert.Equal(t, TypeComment, comment.Type)
	assert.Nil(t, comment.ReminderOffset)
}

func TestNotificationType_Emailable(t *testing.T) {
	assert.True(t, TypeReminder.Emailable())
	assert.True(t, TypeOverdue.Emailable())
	assert.True(t, TypeUpdate.Emailable())
	assert.False(t, TypeComment.Emailable())
	assert.False(t, TypeMention.Emailable())
}
