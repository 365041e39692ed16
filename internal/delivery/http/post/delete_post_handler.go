package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
}

func NewDeletePostHandler(postService PostDeleter) *DeletePostHandler {
	return &DeletePostHandler{postService: postService}
}

func (h *DeletePostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
