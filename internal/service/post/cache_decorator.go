package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bannylog-post-service/internal/cache"
	"bannylog-post-service/internal/custom_errors"
	"bannylog-post-service/internal/logger"
	"bannylog-post-service/internal/metrics"
	"bannylog-post-service/internal/model"
)

type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) error {
	err := d.service.CreatePost(ctx, post)
	d.metrics.IncrementPostOperations("create", err == nil)
	return err
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.PostResponse, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setCacheStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setCacheStart))

	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, search model.PostSearch) ([]*model.PostResponse, error) {
	// Pages are not cached; only single-post reads are.
	return d.service.ListPosts(ctx, search)
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) error {
	err := d.service.UpdatePost(ctx, id, post)
	d.metrics.IncrementPostOperations("update", err == nil)
	if err != nil {
		return err
	}

	deleteStart := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after update",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(deleteStart))

	return nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, id int64) error {
	err := d.service.DeletePost(ctx, id)
	d.metrics.IncrementPostOperations("delete", err == nil)
	if err != nil {
		return err
	}

	deleteStart := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after delete",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(deleteStart))

	return nil
}
