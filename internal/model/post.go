package model

import "time"

// Post is a persisted news article. ID and CreatedAt are assigned by the
// storage layer on insert and never change afterwards.
type Post struct {
	ID        int64
	Title     string
	Summary   string
	Content   string
	Category  string
	ImageURL  string
	CreatedAt time.Time
}
