package memory

import (
	"context"

	"bannylog-post-service/internal/logger"
	post_repository "bannylog-post-service/internal/repository/post"
	post_memory "bannylog-post-service/internal/repository/post/memory"
	"bannylog-post-service/internal/repository/postgres"
)

// MemoryUnitOfWork hands out transactions over a single shared memory
// repository. Commit and Rollback are no-ops; the memory store applies
// writes immediately.
type MemoryUnitOfWork struct {
	postRepo *post_memory.PostRepository
	log      *logger.Logger
}

func NewMemoryUOW(postRepo *post_memory.PostRepository, log *logger.Logger) postgres.UnitOfWork {
	return &MemoryUnitOfWork{postRepo: postRepo, log: log}
}

func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &MemoryTransaction{postRepo: uow.postRepo}, nil
}

type MemoryTransaction struct {
	postRepo *post_memory.PostRepository
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) PostRepository() post_repository.Repository {
	return t.postRepo
}
