package model

// Feed holds an ordered list of story summaries.
type Feed struct {
	Stories []StorySummary `json:"stories"`
}

// NewFeed creates a Feed from the given stories.
func NewFeed(stories []StorySummary) *Feed {
	if stories == nil {
		stories = []StorySummary{}
	}
	return &Feed{Stories: stories}
}

// FeedFromBookmarks creates a Feed of bookmarked stories, in bookmark order.
func FeedFromBookmarks(bookmarks []Bookmark) *Feed {
	stories := make([]StorySummary, 0, len(bookmarks))
	for _, b := range bookmarks {
		stories = append(stories, b.BookmarkedStory())
	}
	return &Feed{Stories: stories}
}

// Len returns the number of stories.
func (f *Feed) Len() int {
	return len(f.Stories)
}

// GetStoryByID finds a story by ID, returns nil if not found.
func (f *Feed) GetStoryByID(id string) *StorySummary {
	for i := range f.Stories {
		if f.Stories[i].ID == id {
			return &f.Stories[i]
		}
	}
	return nil
}

// Titles returns story titles in feed order.
func (f *Feed) Titles() []string {
	titles := make([]string, len(f.Stories))
	for i, s := range f.Stories {
		titles[i] = s.Title
	}
	return titles
}
