package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/api/dto"
	"github.com/taskhive/notifier/internal/api/respond"
	"github.com/taskhive/notifier/internal/model"
	"github.com/taskhive/notifier/internal/service/activity"
)

// activityService defines the interface that the Handler depends on.
//
// It abstracts turning comment, mention and task-update events into
// stored notifications.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type activityService interface {
	CreateCommentNotifications(ctx context.Context, ev activity.CommentEvent) ([]model.Notification, error)
	CreateMentionNotifications(ctx context.Context, ev activity.MentionEvent) ([]model.Notification, error)
	CreateUpdateNotifications(ctx context.Context, taskID, authorID primitive.ObjectID) ([]model.Notification, error)
}

// Handler handles HTTP requests that report task activity.
type Handler struct {
	service   activityService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s activityService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Comment handles HTTP POST requests announcing a new comment.
//
// It fans out comment notifications to the task's watchers, then
// mention notifications to everyone the comment mentions, and returns
// all created notifications.
func (h *Handler) Comment(c *ginext.Context) {
	var req dto.CommentEventRequest

	// Decode JSON request body into CommentEventRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	// Validate request fields using go-playground/validator.
	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	taskID, err := primitive.ObjectIDFromHex(req.TaskID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", req.TaskID).Msg("failed to parse task id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid task id"))
		return
	}

	commentID, err := primitive.ObjectIDFromHex(req.CommentID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", req.CommentID).Msg("failed to parse comment id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid comment id"))
		return
	}

	authorID, err := primitive.ObjectIDFromHex(req.AuthorID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", req.AuthorID).Msg("failed to parse author id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid author id"))
		return
	}

	excluded := make([]primitive.ObjectID, 0, len(req.ExcludeUserIDs))
	for _, idStr := range req.ExcludeUserIDs {
		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse excluded user id")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid excluded user id"))
			return
		}
		excluded = append(excluded, id)
	}

	created, err := h.service.CreateCommentNotifications(c.Request.Context(), activity.CommentEvent{
		TaskID:         taskID,
		CommentID:      commentID,
		AuthorID:       authorID,
		Body:           req.Body,
		ExcludeUserIDs: excluded,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("task_id", taskID).Msg("failed to create comment notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	mentions, err := h.service.CreateMentionNotifications(c.Request.Context(), activity.MentionEvent{
		TaskID:    taskID,
		CommentID: commentID,
		AuthorID:  authorID,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("comment_id", commentID).Msg("failed to create mention notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, append(created, mentions...))
}

// TaskUpdated handles HTTP POST requests announcing a task edit.
//
// It notifies the task's assignees, excluding the user who made the
// change, and returns the created notifications.
func (h *Handler) TaskUpdated(c *ginext.Context) {
	var req dto.TaskUpdatedRequest

	// Decode JSON request body into TaskUpdatedRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	// Validate request fields using go-playground/validator.
	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	taskID, err := primitive.ObjectIDFromHex(req.TaskID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", req.TaskID).Msg("failed to parse task id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid task id"))
		return
	}

	authorID, err := primitive.ObjectIDFromHex(req.AuthorID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", req.AuthorID).Msg("failed to parse author id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid author id"))
		return
	}

	created, err := h.service.CreateUpdateNotifications(c.Request.Context(), taskID, authorID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("task_id", taskID).Msg("failed to create update notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}
