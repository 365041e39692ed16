package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestPostEditor_Merge(t *testing.T) {
	tests := []struct {
		name        string
		title       *string
		content     *string
		wantTitle   string
		wantContent string
	}{
		{
			name:        "both fields set",
			title:       strPtr("new title"),
			content:     strPtr("new content"),
			wantTitle:   "new title",
			wantContent: "new content",
		},
		{
			name:        "only title set keeps content",
			title:       strPtr("new title"),
			content:     nil,
			wantTitle:   "new title",
			wantContent: "old content",
		},
		{
			name:        "only content set keeps title",
			title:       nil,
			content:     strPtr("new content"),
			wantTitle:   "old title",
			wantContent: "new content",
		},
		{
			name:        "nothing set keeps everything",
			title:       nil,
			content:     nil,
			wantTitle:   "old title",
			wantContent: "old content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{ID: 1, Title: "old title", Content: "old content"}

			editor := post.ToEditor().
				SetTitle(tt.title).
				SetContent(tt.content)
			post.Edit(editor)

			assert.Equal(t, tt.wantTitle, post.Title)
			assert.Equal(t, tt.wantContent, post.Content)
			assert.Equal(t, int64(1), post.ID)
		})
	}
}
