package note

import "time"

const (
	MaxTags                = 9
	DefaultBackgroundColor = "#ffffff"
)

type Note struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Tags            []string  `json:"tags"`
	BackgroundColor string    `json:"backgroundColor"`
	IsArchived      bool      `json:"isArchived"`
	IsTrashed       bool      `json:"isTrashed"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Fields is the full set of user-controlled note fields. Update replaces all
// of them at once; omitted values fall back to the creation defaults.
type Fields struct {
	Title           string
	Content         string
	Tags            []string
	BackgroundColor string
	IsArchived      bool
	IsTrashed       bool
}
