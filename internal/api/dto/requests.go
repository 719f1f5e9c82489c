package dto

// MarkReadRequest lists the notification IDs to flip to read.
type MarkReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// CommentEventRequest announces a freshly created comment.
type CommentEventRequest struct {
	TaskID         string   `json:"task_id" validate:"required"`
	CommentID      string   `json:"comment_id" validate:"required"`
	AuthorID       string   `json:"author_id" validate:"required"`
	Body           string   `json:"body" validate:"required"`
	ExcludeUserIDs []string `json:"exclude_user_ids"`
}

// TaskUpdatedRequest announces an edit to a task.
type TaskUpdatedRequest struct {
	TaskID   string `json:"task_id" validate:"required"`
	AuthorID string `json:"author_id" validate:"required"`
}
