package post_repository

import (
	"context"

	"bannylog-post-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, search model.PostSearch) ([]*model.Post, error)
	Update(ctx context.Context, id int64, editor *model.PostEditor) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
