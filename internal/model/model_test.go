package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/stories/internal/model"
)

// Helper functions for pointers
func stringPtr(s string) *string { return &s }

func TestStorySummary_DecodeGraphQLShape(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		wantBookmarked bool
	}{
		{
			name:           "not bookmarked",
			payload:        `{"id":"42","title":"X","summary":"Y","bookmarkId":null}`,
			wantBookmarked: false,
		},
		{
			name:           "bookmarked",
			payload:        `{"id":"42","title":"X","summary":"Y","bookmarkId":"b1"}`,
			wantBookmarked: true,
		},
		{
			name:           "bookmarkId omitted",
			payload:        `{"id":"42","title":"X","summary":"Y"}`,
			wantBookmarked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.StorySummary
			if err := json.Unmarshal([]byte(tt.payload), &got); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}
			if got.ID != "42" {
				t.Errorf("ID mismatch: got %q, want %q", got.ID, "42")
			}
			if got.IsBookmarked() != tt.wantBookmarked {
				t.Errorf("IsBookmarked() = %v, want %v", got.IsBookmarked(), tt.wantBookmarked)
			}
		})
	}
}

func TestStory_DecodeFlattensSummary(t *testing.T) {
	payload := `{"id":"7","title":"T","summary":"S","bookmarkId":null,"text":"<p>body</p>","author":"Ada"}`

	var got model.Story
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if got.ID != "7" || got.Title != "T" {
		t.Errorf("summary fields not decoded: %+v", got.StorySummary)
	}
	if got.Author != "Ada" {
		t.Errorf("Author = %q, want %q", got.Author, "Ada")
	}
}

func TestBookmark_BookmarkedStory(t *testing.T) {
	b := model.Bookmark{
		ID:    "b1",
		Story: model.StorySummary{ID: "42", Title: "X", Summary: "Y", BookmarkID: nil},
	}

	story := b.BookmarkedStory()
	if story.BookmarkID == nil || *story.BookmarkID != "b1" {
		t.Errorf("expected bookmark id b1, got %v", story.BookmarkID)
	}
	if b.Story.BookmarkID != nil {
		t.Error("original bookmark story must not be modified")
	}
}

func TestFeed_GetStoryByID(t *testing.T) {
	feed := model.NewFeed([]model.StorySummary{
		{ID: "1", Title: "One"},
		{ID: "2", Title: "Two", BookmarkID: stringPtr("b2")},
	})

	story := feed.GetStoryByID("2")
	if story == nil {
		t.Fatal("expected to find story 2")
	}
	if story.Title != "Two" {
		t.Errorf("expected title 'Two', got %q", story.Title)
	}

	if feed.GetStoryByID("nonexistent") != nil {
		t.Error("expected nil for nonexistent story")
	}
}

func TestFeedFromBookmarks(t *testing.T) {
	feed := model.FeedFromBookmarks([]model.Bookmark{
		{ID: "b1", Story: model.StorySummary{ID: "42", Title: "X"}},
		{ID: "b2", Story: model.StorySummary{ID: "43", Title: "Y"}},
	})

	if feed.Len() != 2 {
		t.Fatalf("expected 2 stories, got %d", feed.Len())
	}
	for _, s := range feed.Stories {
		if !s.IsBookmarked() {
			t.Errorf("story %s should carry its bookmark id", s.ID)
		}
	}
}

func TestNewFeed_NilStories(t *testing.T) {
	feed := model.NewFeed(nil)
	if feed.Stories == nil {
		t.Error("expected non-nil stories slice")
	}
	if feed.Len() != 0 {
		t.Errorf("expected empty feed, got %d", feed.Len())
	}
}
