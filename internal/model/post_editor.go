package model

// PostEditor collects the merged state of a partial edit. A nil override
// keeps the prefilled value, so callers cannot clear a field through an
// edit, only replace it.
type PostEditor struct {
	title   string
	content string
}

func (e *PostEditor) SetTitle(title *string) *PostEditor {
	if title != nil {
		e.title = *title
	}
	return e
}

func (e *PostEditor) SetContent(content *string) *PostEditor {
	if content != nil {
		e.content = *content
	}
	return e
}

func (e *PostEditor) Title() string {
	return e.title
}

func (e *PostEditor) Content() string {
	return e.content
}
