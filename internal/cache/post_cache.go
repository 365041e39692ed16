package cache

import (
	"context"

	"bannylog-post-service/internal/model"
)

//go:generate mockery --name PostCache --dir . --output ../../mocks/cache --outpkg mocks --filename PostCache.go
type PostCache interface {
	GetPost(ctx context.Context, postID int64) (*model.PostResponse, error)
	SetPost(ctx context.Context, post *model.PostResponse) error
	DeletePost(ctx context.Context, postID int64) error
}
