package post_http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bannylog-post-service/internal/logger"
	post_service "bannylog-post-service/internal/service/post"
)

var validate = newValidator()

// newValidator registers the notblank rule used by create/edit requests:
// whitespace-only values are rejected the same way empty ones are.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

type PostHTTPService struct {
	postService       post_service.Service
	log               *logger.Logger
	createPostHandler *CreatePostHandler
	getPostHandler    *GetPostHandler
	listPostsHandler  *ListPostsHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		postService:       postService,
		log:               log,
		createPostHandler: NewCreatePostHandler(postService, validate),
		getPostHandler:    NewGetPostHandler(postService, validate),
		listPostsHandler:  NewListPostsHandler(postService),
		updatePostHandler: NewUpdatePostHandler(postService, validate),
		deletePostHandler: NewDeletePostHandler(postService),
	}
}

func (s *PostHTTPService) RegisterRoutes(router *gin.Engine) {
	router.POST("/posts", s.createPostHandler.CreatePost)
	router.GET("/posts", s.listPostsHandler.ListPosts)
	router.GET("/posts/:id", s.getPostHandler.GetPost)
	router.PATCH("/posts/:id", s.updatePostHandler.UpdatePost)
	router.DELETE("/posts/:id", s.deletePostHandler.DeletePost)
}

// parseID maps an unparseable path id to a 400 and reports whether the
// caller should continue.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("400", "invalid request"))
		return 0, false
	}
	return id, true
}
