package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/schnackhq/forum-api/internal/core/ports"
)

// ForumHandler handles HTTP requests for threads and posts.
type ForumHandler struct {
	service ports.ForumService
}

func NewForumHandler(service ports.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

// CreateThread handles POST /v1/threads.
//
// @Summary      Create a thread
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createThreadRequest  true  "Thread details"
// @Success      201   {object}  threadResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/threads [post]
func (h *ForumHandler) CreateThread(c echo.Context) error {
	subject, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	thread, err := h.service.CreateThread(c.Request().Context(), req.Title, subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toThreadResponse(*thread))
}

// ListThreads handles GET /v1/threads.
//
// @Summary      List threads
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  threadResponse
// @Router       /v1/threads [get]
func (h *ForumHandler) ListThreads(c echo.Context) error {
	threads, err := h.service.ListThreads(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]threadResponse, 0, len(threads))
	for _, t := range threads {
		out = append(out, toThreadResponse(t))
	}
	return c.JSON(http.StatusOK, out)
}

// GetThread handles GET /v1/threads/:id.
//
// @Summary      Get a thread with its posts
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Thread ID"
// @Success      200  {object}  threadDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/threads/{id} [get]
func (h *ForumHandler) GetThread(c echo.Context) error {
	detail, err := h.service.GetThread(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	posts := make([]postResponse, 0, len(detail.Posts))
	for _, p := range detail.Posts {
		posts = append(posts, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, threadDetailResponse{
		Thread: toThreadResponse(detail.Thread),
		Posts:  posts,
	})
}

// CreatePost handles POST /v1/threads/:id/posts.
//
// @Summary      Add a post to a thread
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Thread ID"
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/threads/{id}/posts [post]
func (h *ForumHandler) CreatePost(c echo.Context) error {
	subject, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.CreatePost(c.Request().Context(), c.Param("id"), subject, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPostResponse(*post))
}

// DeleteThread handles DELETE /v1/threads/:id. Administrators only.
//
// @Summary      Delete a thread
// @Tags         forum
// @Security     BearerAuth
// @Param        id  path  string  true  "Thread ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/threads/{id} [delete]
func (h *ForumHandler) DeleteThread(c echo.Context) error {
	_, _, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteThread(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
