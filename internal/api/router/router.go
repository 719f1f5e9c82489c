package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/taskhive/notifier/internal/api/handlers/event"
	"github.com/taskhive/notifier/internal/api/handlers/notification"
)

func New(notifications *notification.Handler, events *event.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.GET("/notifications/unread/:user_id", notifications.Unread)
		api.POST("/notifications/read", notifications.MarkRead)
		api.POST("/events/comment", events.Comment)
		api.POST("/events/task-updated", events.TaskUpdated)
	}

	return e
}
