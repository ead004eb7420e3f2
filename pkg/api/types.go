package api

import "time"

// Post is the wire shape of a persisted article. createdAt serializes as
// RFC 3339; the server always populates it, null stays legal for readers.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostInput is the writable subset of Post a client supplies on create.
type PostInput struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

// ListPostsQuery holds the optional query-string filters of posts.list.
// Empty values mean the filter is not applied.
type ListPostsQuery struct {
	Category string
	Search   string
}

// ErrorResponse is the body of every non-2xx response. Field is set only for
// validation failures and names the offending input field.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
