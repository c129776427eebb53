package handler

import (
	"net/http"

	"ecovis/internal/delivery/api/response"
	"ecovis/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ForumHandlerParams holds dependencies for ForumHandler, injected by Fx.
type ForumHandlerParams struct {
	fx.In

	ForumUC   usecase.ForumUsecase
	Paginator *Paginator
}

// ForumHandler serves the community forum.
type ForumHandler struct {
	forumUC   usecase.ForumUsecase
	paginator *Paginator
}

// NewForumHandler is the constructor for ForumHandler
func NewForumHandler(params ForumHandlerParams) *ForumHandler {
	return &ForumHandler{
		forumUC:   params.ForumUC,
		paginator: params.Paginator,
	}
}

// CreatePost handles POST /api/forum/posts.
func (h *ForumHandler) CreatePost(c echo.Context) error {
	var input usecase.CreateForumPostInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.forumUC.CreatePost(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// ListPosts handles GET /api/forum/posts?limit&offset.
func (h *ForumHandler) ListPosts(c echo.Context) error {
	posts, err := h.forumUC.ListPosts(c.Request().Context(), h.paginator.Page(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// GetPost handles GET /api/forum/posts/:id.
func (h *ForumHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.forumUC.GetPost(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post)
}

// LikePost handles POST /api/forum/posts/:id/like.
func (h *ForumHandler) LikePost(c echo.Context) error {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.forumUC.LikePost(c.Request().Context(), postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Post liked successfully")
}

// UnlikePost handles DELETE /api/forum/posts/:id/like.
func (h *ForumHandler) UnlikePost(c echo.Context) error {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.forumUC.UnlikePost(c.Request().Context(), postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Post unliked successfully")
}

// CreateComment handles POST /api/forum/posts/:id/comments.
// A missing post answers 404 before the body is validated.
func (h *ForumHandler) CreateComment(c echo.Context) error {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.forumUC.GetPost(c.Request().Context(), postID); err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateForumCommentInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}
	input.PostID = postID

	comment, err := h.forumUC.CreateComment(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}

// ListComments handles GET /api/forum/posts/:id/comments.
func (h *ForumHandler) ListComments(c echo.Context) error {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comments, err := h.forumUC.ListComments(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}
