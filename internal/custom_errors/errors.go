package custom_errors

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrCacheMiss     = errors.New("cache miss")
)
