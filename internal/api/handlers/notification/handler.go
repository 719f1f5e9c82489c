package notification

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
	"github.com/taskhive/notifier/internal/service/activity"
)

// activityService defines the interface that the Handler depends on.
//
// It abstracts the in-app surface: listing a user's unread
// notifications and marking them read.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type activityService interface {
	GetUnreadNotifications(ctx context.Context, userID primitive.ObjectID) ([]activity.UnreadNotification, error)
	MarkNotificationsAsRead(ctx context.Context, ids []primitive.ObjectID) error
}

// Handler handles HTTP requests for the in-app notification surface.
type Handler struct {
	service   activityService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s activityService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Unread handles HTTP GET requests for a user's unread notifications.
//
// It expects the user ID as a URL parameter and returns the unread
// list, most imminent first, each entry joined with its task title.
func (h *Handler) Unread(c *ginext.Context) {
	idStr := c.Param("user_id")
	userID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	notifications, err := h.service.GetUnreadNotifications(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg("failed to get unread notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// MarkRead handles HTTP POST requests to mark notifications as read.
//
// It validates the request body and flips read=true for every listed
// notification ID.
func (h *Handler) MarkRead(c *ginext.Context) {
	var req dto.MarkReadRequest

	// Decode JSON request body into MarkReadRequest struct.
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

	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, idStr := range req.IDs {
		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse notification id")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification id"))
			return
		}
		ids = append(ids, id)
	}

	if err := h.service.MarkNotificationsAsRead(c.Request.Context(), ids); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to mark notifications read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notifications marked read")
}
