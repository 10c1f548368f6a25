package handler

import (
	"time"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject"`
	Username      string `json:"username"`
	Role          string `json:"role"`
}

// --- Forum ---

type createThreadRequest struct {
	Title string `json:"title" validate:"required,min=3,max=200"`
}

type createPostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type threadResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

type postResponse struct {
	ID          string    `json:"id"`
	ThreadID    string    `json:"thread_id"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type threadDetailResponse struct {
	Thread threadResponse `json:"thread"`
	Posts  []postResponse `json:"posts"`
}

func toThreadResponse(t domain.Thread) threadResponse {
	return threadResponse{
		ID:         t.ID,
		Title:      t.Title,
		OwnerEmail: t.OwnerEmail,
		CreatedAt:  t.CreatedAt,
	}
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		ThreadID:    p.ThreadID,
		AuthorEmail: p.AuthorEmail,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
	}
}
