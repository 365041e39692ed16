package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bannylog-post-service/internal/model"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) error
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

// An omitted field means "keep the stored value"; present fields may not
// be blank.
type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,notblank"`
	Content *string `json:"content" validate:"omitempty,notblank"`
}

func (h *UpdatePostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("400", "invalid request"))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}

	updateDTO := &model.UpdatePostDTO{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := h.postService.UpdatePost(c.Request.Context(), id, updateDTO); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
