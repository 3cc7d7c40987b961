package storage

import (
	"os"
	"path/filepath"

	"github.com/nikbrunner/stories/internal/model"
)

// Cache defines the offline copy of the remote story data.
type Cache interface {
	LoadStories() ([]model.StorySummary, error)
	SaveStories(stories []model.StorySummary) error
	LoadBookmarks() ([]model.Bookmark, error)
	SaveBookmarks(bookmarks []model.Bookmark) error
	LoadStory(id string) (*model.Story, error)
	PutStory(story model.StorySummary) error
	PutStoryDetails(story model.Story) error
	ClearBookmark(bookmarkID string) error
}

// CacheStats summarizes the cache contents.
type CacheStats struct {
	Stories    int
	Listed     int
	Bookmarked int
}

// ResolveCachePath returns the configured cache path or the default.
func ResolveCachePath(cfg *Config) (string, error) {
	if cfg != nil && cfg.CachePath != "" {
		return cfg.CachePath, nil
	}
	return DefaultCachePath()
}

// ResolveLogPath returns the configured log file or the default.
func ResolveLogPath(cfg *Config) (string, error) {
	if cfg != nil && cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	return inConfigDir("stories.log")
}

// DefaultCachePath returns the default cache path: ~/.config/stories/cache.db
func DefaultCachePath() (string, error) {
	return inConfigDir("cache.db")
}

func inConfigDir(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "stories", name), nil
}
