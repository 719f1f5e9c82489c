package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mocks "github.com/taskhive/notifier/internal/mocks/worker"
	"github.com/taskhive/notifier/internal/model"
)

func TestScheduler_Run_EvaluatorThenOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReminders := mocks.NewMockreminderService(ctrl)
	mockOutbox := mocks.NewMockoutboxService(ctrl)
	mockDigest := mocks.NewMockdigestService(ctrl)

	s := NewScheduler(mockReminders, mockOutbox, mockDigest, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockReminders.EXPECT().CheckAndCreateReminders(gomock.Any()).
		Return([]model.Notification{{ID: primitive.NewObjectID()}}, nil).MinTimes(1)
	mockOutbox.EXPECT().SendPendingEmails(gomock.Any()).
		Return([]primitive.ObjectID{primitive.NewObjectID()}, nil).MinTimes(1)

	go s.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestScheduler_Run_EvaluatorErrorDoesNotStopOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReminders := mocks.NewMockreminderService(ctrl)
	mockOutbox := mocks.NewMockoutboxService(ctrl)
	mockDigest := mocks.NewMockdigestService(ctrl)

	s := NewScheduler(mockReminders, mockOutbox, mockDigest, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockReminders.EXPECT().CheckAndCreateReminders(gomock.Any()).
		Return(nil, errors.New("store unavailable")).MinTimes(1)
	mockOutbox.EXPECT().SendPendingEmails(gomock.Any()).Return(nil, nil).MinTimes(1)

	go s.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestScheduler_Run_DigestTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReminders := mocks.NewMockreminderService(ctrl)
	mockOutbox := mocks.NewMockoutboxService(ctrl)
	mockDigest := mocks.NewMockdigestService(ctrl)

	s := NewScheduler(mockReminders, mockOutbox, mockDigest, time.Hour, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockDigest.EXPECT().SendDailyDigest(gomock.Any()).Return(0, nil).MinTimes(1)

	go s.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}
