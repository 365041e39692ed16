package model

type CreatePostDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChangeTitle returns a copy with a different title, leaving the
// original DTO untouched.
func (d CreatePostDTO) ChangeTitle(title string) CreatePostDTO {
	return CreatePostDTO{
		Title:   title,
		Content: d.Content,
	}
}
