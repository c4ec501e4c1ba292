package models

import "time"

// ForumPost represents a community discussion item.
// Likes and replies are server-controlled counters initialized to zero for
// every user-created post; seed data is the only source of nonzero values.
type ForumPost struct {
	ID        int64     `json:"id" db:"id"`                // Primary key
	UserID    *int64    `json:"userId" db:"user_id"`       // Owning user, nil for anonymous
	Title     string    `json:"title" db:"title"`          // Post title
	Content   string    `json:"content" db:"content"`      // Post body
	Category  string    `json:"category" db:"category"`    // Fixed category string
	Likes     int       `json:"likes" db:"likes"`          // Like counter
	Replies   int       `json:"replies" db:"replies"`      // Reply counter
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}
