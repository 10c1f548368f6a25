package domain

import "time"

// Thread is a top-level discussion owned by the account that created it.
type Thread struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

// Post is a single message inside a thread.
type Post struct {
	ID          string    `json:"id"`
	ThreadID    string    `json:"thread_id"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
