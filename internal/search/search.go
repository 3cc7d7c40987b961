package search

import (
	"github.com/nikbrunner/stories/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Story          *model.StorySummary
	MatchedIndexes []int
	Score          int
}

// FuzzySearchStories searches stories by title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchStories(feed *model.Feed, query string) []SearchResult {
	if query == "" || feed == nil {
		return nil
	}

	matches := fuzzy.Find(query, feed.Titles())

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Story:          &feed.Stories[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// FilterStories narrows a list to the stories whose titles match query.
// An empty query keeps the list as is.
func FilterStories(stories []model.StorySummary, query string) []model.StorySummary {
	if query == "" {
		return stories
	}

	results := FuzzySearchStories(model.NewFeed(stories), query)
	filtered := make([]model.StorySummary, len(results))
	for i, r := range results {
		filtered[i] = *r.Story
	}
	return filtered
}
