package models

import "time"

// Comment represents a reader comment on a work. UserName is a snapshot of
// the author's display name at post time and is not kept in sync with later
// profile edits.
type Comment struct {
	ID        string    `json:"id"`
	WorkID    string    `json:"workId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentRequest defines the request body for posting a comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
