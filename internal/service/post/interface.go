package post_service

import (
	"context"

	"bannylog-post-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) error
	GetPostByID(ctx context.Context, id int64) (*model.PostResponse, error)
	ListPosts(ctx context.Context, search model.PostSearch) ([]*model.PostResponse, error)
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) error
	DeletePost(ctx context.Context, id int64) error
}
