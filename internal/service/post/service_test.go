package post_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bannylog-post-service/internal/custom_errors"
	"bannylog-post-service/internal/logger"
	"bannylog-post-service/internal/model"
	post_repository_mock "bannylog-post-service/mocks/post"
	postgres_mock "bannylog-post-service/mocks/postgres"
)

func TestPostService_CreatePost(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		post        *model.CreatePostDTO
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return p.Title == "Test Post" && p.Content == "Test content"
				})).Return(&model.Post{ID: 1, Title: "Test Post", Content: "Test content"}, nil)
			},
			post:    &model.CreatePostDTO{Title: "Test Post", Content: "Test content"},
			wantErr: false,
		},
		{
			name: "Repository error",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil, custom_errors.ErrDatabaseQuery)
			},
			post:        &model.CreatePostDTO{Title: "Test Post", Content: "Test content"},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(postRepo)

			s := NewPostService(postRepo, uow, log)
			err := s.CreatePost(context.Background(), tt.post)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		id          int64
		want        *model.PostResponse
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "foo", Content: "bar"}, nil)
			},
			id:      1,
			want:    &model.PostResponse{ID: 1, Title: "foo", Content: "bar"},
			wantErr: false,
		},
		{
			name: "Title truncated in response",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(2)).Return(&model.Post{ID: 2, Title: "a very long title indeed", Content: "bar"}, nil)
			},
			id:      2,
			want:    &model.PostResponse{ID: 2, Title: "a very lon", Content: "bar"},
			wantErr: false,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(999)).Return(nil, custom_errors.ErrPostNotFound)
			},
			id:          999,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Database error",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("db error"))
			},
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(postRepo)

			s := NewPostService(postRepo, uow, log)
			got, err := s.GetPostByID(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	log := logger.New("test")

	t.Run("maps posts to responses preserving order", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		search := model.PostSearch{Page: 1, Size: 10}
		postRepo.On("List", mock.Anything, search).Return([]*model.Post{
			{ID: 3, Title: "third", Content: "c3"},
			{ID: 2, Title: "second", Content: "c2"},
			{ID: 1, Title: "first", Content: "c1"},
		}, nil)

		s := NewPostService(postRepo, uow, log)
		got, err := s.ListPosts(context.Background(), search)

		assert.NoError(t, err)
		assert.Equal(t, []*model.PostResponse{
			{ID: 3, Title: "third", Content: "c3"},
			{ID: 2, Title: "second", Content: "c2"},
			{ID: 1, Title: "first", Content: "c1"},
		}, got)
		postRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		postRepo := new(post_repository_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		postRepo.On("List", mock.Anything, mock.AnythingOfType("model.PostSearch")).Return(nil, errors.New("db error"))

		s := NewPostService(postRepo, uow, log)
		got, err := s.ListPosts(context.Background(), model.NewPostSearch())

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Nil(t, got)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		id          int64
		update      *model.UpdatePostDTO
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success merges only set fields",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "old title", Content: "old content"}, nil)
				postRepo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(e *model.PostEditor) bool {
					return e.Title() == "new title" && e.Content() == "old content"
				})).Return(&model.Post{ID: 1, Title: "new title", Content: "old content"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			id:      1,
			update:  &model.UpdatePostDTO{Title: strPtr("new title")},
			wantErr: false,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(999)).Return(nil, custom_errors.ErrPostNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          999,
			update:      &model.UpdatePostDTO{Title: strPtr("new title")},
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Transaction begin error",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			id:          1,
			update:      &model.UpdatePostDTO{Title: strPtr("new title")},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Commit error",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "old", Content: "old"}, nil)
				postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.PostEditor")).Return(&model.Post{ID: 1}, nil)
				tx.On("Commit", mock.Anything).Return(errors.New("commit failed"))
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          1,
			update:      &model.UpdatePostDTO{Title: strPtr("new")},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			tt.mocks(postRepo, uow, tx)

			s := NewPostService(postRepo, uow, log)
			err := s.UpdatePost(context.Background(), tt.id, tt.update)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			postRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		id          int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
			},
			id:      1,
			wantErr: false,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Delete", mock.Anything, int64(999)).Return(custom_errors.ErrPostNotFound)
			},
			id:          999,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Database error",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Delete", mock.Anything, int64(1)).Return(errors.New("db error"))
			},
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(postRepo)

			s := NewPostService(postRepo, uow, log)
			err := s.DeletePost(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
			} else {
				assert.NoError(t, err)
			}
			postRepo.AssertExpectations(t)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
