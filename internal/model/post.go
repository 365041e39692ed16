package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// ToEditor returns an editor prefilled with the post's current values,
// so fields left unset keep what is already stored.
func (p *Post) ToEditor() *PostEditor {
	return &PostEditor{
		title:   p.Title,
		content: p.Content,
	}
}

// Edit replaces both fields from the editor in one step.
func (p *Post) Edit(editor *PostEditor) {
	p.Title = editor.title
	p.Content = editor.content
}
