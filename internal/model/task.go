package model

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is the workflow state of a task. StatusDone is terminal:
// tasks in it never produce notifications and their pending emails are
// dropped by the outbox.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

// DefaultReminderOffsets is applied to tasks that carry a deadline but
// no explicit offsets: 7 days, 3 days and 1 day before the deadline,
// in minutes.
var DefaultReminderOffsets = []int{10080, 4320, 1440}

// Task is consumed read-only by the engine; it is owned by the task
// service that hosts us.
type Task struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title               string               `bson:"title" json:"title"`
	Status              TaskStatus           `bson:"status" json:"status"`
	Deadline            *time.Time           `bson:"deadline,omitempty" json:"deadline,omitempty"`
	ReminderOffsets     []int                `bson:"reminder_offsets,omitempty" json:"reminder_offsets,omitempty"`
	AssignedTeamMembers []primitive.ObjectID `bson:"assigned_team_members" json:"assigned_team_members"`
	CreatedBy           primitive.ObjectID   `bson:"created_by" json:"created_by"`
	CreatedAt           time.Time            `bson:"created_at" json:"created_at"`
}

// EffectiveReminderOffsets returns the offsets the evaluator should
// fire on: the task's own offsets normalized, or the default set when
// the task has a deadline but no offsets of its own. Tasks without a
// deadline have no reminder schedule at all.
func (t Task) EffectiveReminderOffsets() []int {
	if t.Deadline == nil {
		return nil
	}
	if len(t.ReminderOffsets) == 0 {
		return DefaultReminderOffsets
	}
	return NormalizeReminderOffsets(t.ReminderOffsets)
}

// NormalizeReminderOffsets drops non-positive values, deduplicates and
// sorts descending (largest offset = earliest reminder).
func NormalizeReminderOffsets(offsets []int) []int {
	seen := make(map[int]struct{}, len(offsets))
	out := make([]int, 0, len(offsets))

	for _, m := range offsets {
		if m <= 0 {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}
