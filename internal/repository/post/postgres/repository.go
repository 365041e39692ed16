package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"bannylog-post-service/internal/custom_errors"
	"bannylog-post-service/internal/logger"
	"bannylog-post-service/internal/metrics"
	"bannylog-post-service/internal/model"
)

// PgDB is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// repository can run standalone or inside a unit of work.
type PgDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostRepository struct {
	log     *logger.Logger
	db      PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) recordQuery(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"title":      post.Title,
		"content":    post.Content,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (title, content, created_at, updated_at)
		VALUES (@title, @content, @created_at, @updated_at)
		RETURNING id, title, content, created_at, updated_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.Title,
		&createdPost.Content,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)

	if err != nil {
		p.recordQuery("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_create", start, true)
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, content, created_at, updated_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		p.recordQuery("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) List(ctx context.Context, search model.PostSearch) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"limit":  search.Limit(),
		"offset": search.Offset(),
	}

	// Most recent first. Ordering by id is deliberate, not a store default.
	query := `SELECT id, title, content, created_at, updated_at
				FROM posts ORDER BY id DESC LIMIT @limit OFFSET @offset`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.recordQuery("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			p.recordQuery("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.recordQuery("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_list", start, true)
	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, editor *model.PostEditor) (*model.Post, error) {
	start := time.Now()
	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"id":         id,
		"title":      editor.Title(),
		"content":    editor.Content(),
		"updated_at": updatedAt,
	}

	// Both fields are written together so a concurrent reader never sees
	// a half-applied edit.
	query := `UPDATE posts SET title = @title, content = @content, updated_at = @updated_at
				WHERE id = @id
				RETURNING id, title, content, created_at, updated_at`

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.Title,
		&updatedPost.Content,
		&updatedPost.CreatedAt,
		&updatedPost.UpdatedAt,
	)

	if err != nil {
		p.recordQuery("post_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_update", start, true)
	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.recordQuery("post_delete", start, false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.recordQuery("post_delete", start, false)
		return custom_errors.ErrPostNotFound
	}

	p.recordQuery("post_delete", start, true)
	return nil
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	query := `SELECT count(*) FROM posts`

	var count int64
	err := p.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		p.recordQuery("post_count", start, false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.recordQuery("post_count", start, true)
	return count, nil
}
