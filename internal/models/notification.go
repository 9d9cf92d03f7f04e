package models

import "time"

// Actor identifies who triggered a notification, snapshotted at creation.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Notification represents an in-app notification for a user. Created as a
// side effect of domain operations (currently: a reader commenting on the
// owner's work) and removed in cascade when the linked work is deleted.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"` // recipient
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	Actor     Actor     `json:"actor"`
}

// MarkNotificationsReadRequest defines the request body for marking
// notifications as read; unknown ids are ignored.
type MarkNotificationsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
