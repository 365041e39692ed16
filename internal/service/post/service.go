package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bannylog-post-service/internal/custom_errors"
	"bannylog-post-service/internal/logger"
	"bannylog-post-service/internal/model"
	post_repository "bannylog-post-service/internal/repository/post"
	"bannylog-post-service/internal/repository/postgres"
)

type PostService struct {
	postRepo post_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
}

func NewPostService(
	postRepo post_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		uow:      uow,
		log:      log,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) error {
	newPost := &model.Post{
		Title:   post.Title,
		Content: post.Content,
	}

	created, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	s.log.Debug("Post created", slog.Int64("id", created.ID))
	return nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	return model.NewPostResponse(post), nil
}

func (s *PostService) ListPosts(ctx context.Context, search model.PostSearch) ([]*model.PostResponse, error) {
	posts, err := s.postRepo.List(ctx, search)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, model.NewPostResponse(post))
	}
	return result, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()

	existingPost, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	// Merge semantics: a nil field keeps the stored value.
	editor := existingPost.ToEditor().
		SetTitle(post.Title).
		SetContent(post.Content)

	_, err = postRepo.Update(ctx, id, editor)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	err := s.postRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}
