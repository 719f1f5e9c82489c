package event

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskhive/notifier/internal/api/dto"
	mocks "github.com/taskhive/notifier/internal/mocks/api/handlers/event"
	"github.com/taskhive/notifier/internal/model"
	"github.com/taskhive/notifier/internal/service/activity"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockactivityService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockactivityService(ctrl)
	validate := validator.New()
	handler := NewHandler(mockService, validate)
	return handler, mockService
}

func postJSON(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestHandler_Comment_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	taskID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	authorID := primitive.NewObjectID()

	c, w := postJSON(t, dto.CommentEventRequest{
		TaskID:    taskID.Hex(),
		CommentID: commentID.Hex(),
		AuthorID:  authorID.Hex(),
		Body:      "looks good",
	})

	mockService.EXPECT().
		CreateCommentNotifications(gomock.Any(), activity.CommentEvent{
			TaskID:         taskID,
			CommentID:      commentID,
			AuthorID:       authorID,
			Body:           "looks good",
			ExcludeUserIDs: []primitive.ObjectID{},
		}).
		Return([]model.Notification{{Type: model.TypeComment}}, nil)

	mockService.EXPECT().
		CreateMentionNotifications(gomock.Any(), activity.MentionEvent{
			TaskID:    taskID,
			CommentID: commentID,
			AuthorID:  authorID,
		}).
		Return([]model.Notification{{Type: model.TypeMention}}, nil)

	handler.Comment(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), string(model.TypeComment))
	assert.Contains(t, w.Body.String(), string(model.TypeMention))
}

func TestHandler_Comment_MissingFields(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := postJSON(t, dto.CommentEventRequest{Body: "no ids"})

	handler.Comment(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Comment_InvalidTaskID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := postJSON(t, dto.CommentEventRequest{
		TaskID:    "not-an-id",
		CommentID: primitive.NewObjectID().Hex(),
		AuthorID:  primitive.NewObjectID().Hex(),
		Body:      "hi",
	})

	handler.Comment(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_TaskUpdated_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	taskID := primitive.NewObjectID()
	authorID := primitive.NewObjectID()

	c, w := postJSON(t, dto.TaskUpdatedRequest{
		TaskID:   taskID.Hex(),
		AuthorID: authorID.Hex(),
	})

	mockService.EXPECT().
		CreateUpdateNotifications(gomock.Any(), taskID, authorID).
		Return([]model.Notification{{Type: model.TypeUpdate}}, nil)

	handler.TaskUpdated(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_TaskUpdated_MissingFields(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := postJSON(t, dto.TaskUpdatedRequest{})

	handler.TaskUpdated(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
