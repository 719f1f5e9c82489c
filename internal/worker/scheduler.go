// Package worker drives the engine's periodic triggers: the
// minute-cadence reminder/outbox tick and the daily digest.
package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/model"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/mock.go -package=mocks

type reminderService interface {
	CheckAndCreateReminders(ctx context.Context) ([]model.Notification, error)
}

type outboxService interface {
	SendPendingEmails(ctx context.Context) ([]primitive.ObjectID, error)
}

type digestService interface {
	SendDailyDigest(ctx context.Context) (int, error)
}

const (
	defaultReminderInterval = time.Minute
	defaultDigestInterval   = 24 * time.Hour
)

type Scheduler struct {
	reminders        reminderService
	outbox           outboxService
	digest           digestService
	reminderInterval time.Duration
	digestInterval   time.Duration
}

// NewScheduler creates a scheduler over the three jobs. Non-positive
// intervals fall back to the defaults (one minute, one day).
func NewScheduler(
	reminders reminderService,
	outbox outboxService,
	digest digestService,
	reminderInterval, digestInterval time.Duration,
) *Scheduler {
	if reminderInterval <= 0 {
		reminderInterval = defaultReminderInterval
	}
	if digestInterval <= 0 {
		digestInterval = defaultDigestInterval
	}

	return &Scheduler{
		reminders:        reminders,
		outbox:           outbox,
		digest:           digest,
		reminderInterval: reminderInterval,
		digestInterval:   digestInterval,
	}
}

// Run blocks until the context is cancelled. Each reminder tick runs
// the evaluator and then drains the outbox, sequentially; ticks are
// never run concurrently with each other, which the evaluator's
// check-then-insert dedup relies on.
func (s *Scheduler) Run(ctx context.Context) {
	reminderTicker := time.NewTicker(s.reminderInterval)
	defer reminderTicker.Stop()

	digestTicker := time.NewTicker(s.digestInterval)
	defer digestTicker.Stop()

	zlog.Logger.Info().
		Dur("reminder_interval", s.reminderInterval).
		Dur("digest_interval", s.digestInterval).
		Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-reminderTicker.C:
			s.runReminderTick(ctx)
		case <-digestTicker.C:
			s.runDigest(ctx)
		}
	}
}

func (s *Scheduler) runReminderTick(ctx context.Context) {
	runID := uuid.New().String()

	created, err := s.reminders.CheckAndCreateReminders(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("run_id", runID).Msg("reminder evaluation failed")
	} else if len(created) > 0 {
		zlog.Logger.Info().Str("run_id", runID).Int("created", len(created)).Msg("reminder evaluation finished")
	}

	sent, err := s.outbox.SendPendingEmails(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("run_id", runID).Msg("outbox drain failed")
	} else if len(sent) > 0 {
		zlog.Logger.Info().Str("run_id", runID).Int("sent", len(sent)).Msg("outbox drained")
	}
}

func (s *Scheduler) runDigest(ctx context.Context) {
	runID := uuid.New().String()

	sent, err := s.digest.SendDailyDigest(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("run_id", runID).Msg("daily digest failed")
		return
	}

	zlog.Logger.Info().Str("run_id", runID).Int("digests", sent).Msg("daily digest finished")
}
