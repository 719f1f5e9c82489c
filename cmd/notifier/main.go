package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/taskhive/notifier/internal/api/handlers/event"
	"github.com/taskhive/notifier/internal/api/handlers/notification"
	"github.com/taskhive/notifier/internal/api/router"
	"github.com/taskhive/notifier/internal/api/server"
	"github.com/taskhive/notifier/internal/config"
	"github.com/taskhive/notifier/internal/mongodb"
	commentrepo "github.com/taskhive/notifier/internal/repository/comment"
	notifrepo "github.com/taskhive/notifier/internal/repository/notification"
	taskrepo "github.com/taskhive/notifier/internal/repository/task"
	userrepo "github.com/taskhive/notifier/internal/repository/user"
	"github.com/taskhive/notifier/internal/service/activity"
	"github.com/taskhive/notifier/internal/service/digest"
	"github.com/taskhive/notifier/internal/service/outbox"
	"github.com/taskhive/notifier/internal/service/reminder"
	"github.com/taskhive/notifier/internal/worker"
	"github.com/taskhive/notifier/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	tasks := taskrepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)
	users := userrepo.NewRepository(db)
	comments := commentrepo.NewRepository(db)

	reminderService := reminder.NewService(tasks, notifications)
	outboxService := outbox.NewService(notifications, tasks, users, emailClient, rdb, cfg.Retry)
	activityService := activity.NewService(tasks, comments, users, notifications)
	digestService := digest.NewService(notifications, tasks, users, emailClient, cfg.Retry)

	scheduler := worker.NewScheduler(
		reminderService,
		outboxService,
		digestService,
		cfg.Scheduler.ReminderInterval,
		cfg.Scheduler.DigestInterval,
	)

	go scheduler.Run(ctx)

	notifHandler := notification.NewHandler(activityService, val)
	eventHandler := event.NewHandler(activityService, val)

	r := router.New(notifHandler, eventHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to disconnect from mongodb")
	}
}
