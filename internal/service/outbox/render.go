package outbox

import (
	"fmt"
	"html"

	"github.com/taskhive/notifier/internal/model"
)

// renderEmail builds the subject and HTML body for an emailable
// notification. The body always carries the notification's message,
// which may be empty.
func renderEmail(n model.Notification, task model.Task) (subject, body string) {
	var heading string

	switch n.Type {
	case model.TypeOverdue:
		subject = fmt.Sprintf("Overdue: %s", task.Title)
		heading = "Task Overdue"
	case model.TypeUpdate:
		subject = fmt.Sprintf("Update: %s", task.Title)
		heading = "Task Updated"
	default:
		subject = fmt.Sprintf("Reminder: %s due soon", task.Title)
		heading = "Task Reminder"
	}

	body = fmt.Sprintf("<h2>%s</h2><p>%s</p>", heading, html.EscapeString(n.Message))

	return subject, body
}
