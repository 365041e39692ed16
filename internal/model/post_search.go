package model

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 2000
)

// PostSearch carries the page/size criteria of a listing request.
// Values are clamped, never rejected: page floors at 1, size is kept
// between 0 and MaxSize, so page 0 and page 1 address the same window
// and a negative size yields an empty one.
type PostSearch struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

func NewPostSearch() PostSearch {
	return PostSearch{
		Page: DefaultPage,
		Size: DefaultSize,
	}
}

func (s PostSearch) Limit() int {
	if s.Size < 0 {
		return 0
	}
	if s.Size > MaxSize {
		return MaxSize
	}
	return s.Size
}

func (s PostSearch) Offset() int {
	page := s.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * s.Limit()
}
