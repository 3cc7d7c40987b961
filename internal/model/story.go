package model

// StorySummary is the list-level view of a story.
type StorySummary struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	BookmarkID *string `json:"bookmarkId"` // nil = not bookmarked by the current user
}

// IsBookmarked reports whether the current user has bookmarked the story.
func (s StorySummary) IsBookmarked() bool {
	return s.BookmarkID != nil
}

// Story is the full record shown on the details screen.
type Story struct {
	StorySummary
	Text   string `json:"text"` // may contain HTML
	Author string `json:"author"`
}

// Bookmark links the current user to a story.
type Bookmark struct {
	ID    string       `json:"id"`
	Story StorySummary `json:"story"`
}

// BookmarkedStory returns the bookmark's story with BookmarkID pointing at
// the bookmark, regardless of what the server filled in.
func (b Bookmark) BookmarkedStory() StorySummary {
	story := b.Story
	id := b.ID
	story.BookmarkID = &id
	return story
}
