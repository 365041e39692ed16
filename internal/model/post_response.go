package model

import "unicode/utf8"

// Titles are shaped for display on every response path. The stored title
// is never touched.
const maxResponseTitleLen = 10

type PostResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewPostResponse(post *Post) *PostResponse {
	return &PostResponse{
		ID:      post.ID,
		Title:   truncateTitle(post.Title),
		Content: post.Content,
	}
}

// truncateTitle keeps at most maxResponseTitleLen characters, counting
// runes so multibyte titles are not cut mid-character.
func truncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= maxResponseTitleLen {
		return title
	}
	runes := []rune(title)
	return string(runes[:maxResponseTitleLen])
}
