package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bannylog-post-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostResponse, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
	}
}

func (h *GetPostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
