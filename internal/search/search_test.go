package search

import (
	"testing"

	"github.com/nikbrunner/stories/internal/model"
)

func testFeed() *model.Feed {
	return model.NewFeed([]model.StorySummary{
		{ID: "1", Title: "GitHub Outage Postmortem", Summary: "what broke"},
		{ID: "2", Title: "GitLab Pricing Changes", Summary: "plans"},
		{ID: "3", Title: "TanStack Router Release", Summary: "v2"},
	})
}

func TestFuzzySearchStories_EmptyQuery(t *testing.T) {
	results := FuzzySearchStories(testFeed(), "")

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearchStories_ExactMatch(t *testing.T) {
	results := FuzzySearchStories(testFeed(), "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Story.ID != "1" {
		t.Errorf("expected story 1, got %s", results[0].Story.ID)
	}
}

func TestFuzzySearchStories_FuzzyMatch(t *testing.T) {
	results := FuzzySearchStories(testFeed(), "tanstr")

	if len(results) == 0 {
		t.Fatal("expected at least one fuzzy match")
	}
	if results[0].Story.ID != "3" {
		t.Errorf("expected TanStack Router first, got %q", results[0].Story.Title)
	}
	if len(results[0].MatchedIndexes) != 6 {
		t.Errorf("expected 6 matched indexes, got %d", len(results[0].MatchedIndexes))
	}
}

func TestFuzzySearchStories_NoMatch(t *testing.T) {
	results := FuzzySearchStories(testFeed(), "zzzz")

	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestFuzzySearchStories_NilFeed(t *testing.T) {
	if results := FuzzySearchStories(nil, "git"); results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
}

func TestFilterStories(t *testing.T) {
	stories := testFeed().Stories

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query keeps order", "", []string{"1", "2", "3"}},
		{"prefix", "GitL", []string{"2"}},
		{"no match", "qqq", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStories(stories, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterStories(%q) returned %d stories, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("FilterStories(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}
