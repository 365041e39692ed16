package post_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bannylog-post-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context, search model.PostSearch) ([]*model.PostResponse, error)
}

type ListPostsHandler struct {
	postService PostLister
}

func NewListPostsHandler(postService PostLister) *ListPostsHandler {
	return &ListPostsHandler{postService: postService}
}

func (h *ListPostsHandler) ListPosts(c *gin.Context) {
	search := model.NewPostSearch()

	// Criteria are clamped, never rejected; unparseable values fall back
	// to the defaults.
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		search.Page = page
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil {
		search.Size = size
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), search)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
