package models

import "time"

// Category is the fixed set of publication kinds a work can belong to.
type Category string

const (
	CategoryStory       Category = "Stories"
	CategoryDocumentary Category = "Documentaries"
	CategoryArticle     Category = "Articles"
)

// Categories lists every valid category, in display order.
var Categories = []Category{CategoryStory, CategoryDocumentary, CategoryArticle}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStory, CategoryDocumentary, CategoryArticle:
		return true
	}
	return false
}

// Work is a single uploaded creative document and its metadata.
// Likes must always equal len(LikeUserIDs); LikeUserIDs has set semantics
// (a user appears at most once).
type Work struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Tagline       string    `json:"tagline"`
	Category      Category  `json:"category"`
	FileURL       string    `json:"fileURL"`
	FileName      string    `json:"fileName"`
	UploadDate    time.Time `json:"uploadDate"`
	OwnerID       string    `json:"ownerId"`
	CoverImageURL string    `json:"coverImageURL,omitempty"`
	ViewCount     int       `json:"viewCount"`
	Likes         int       `json:"likes"`
	LikeUserIDs   []string  `json:"likeUserIds"`
}

// CreateWorkRequest defines the request body for publishing a new work.
// Counters are server-initialized and never accepted from the client.
type CreateWorkRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=200"`
	Tagline       string   `json:"tagline" validate:"max=500"`
	Category      Category `json:"category" validate:"required"`
	FileURL       string   `json:"fileURL" validate:"required"`
	FileName      string   `json:"fileName" validate:"required"`
	CoverImageURL string   `json:"coverImageURL,omitempty"`
}
