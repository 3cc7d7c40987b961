package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/picker"
	"github.com/nikbrunner/stories/internal/search"
	"github.com/nikbrunner/stories/internal/source"
	"github.com/nikbrunner/stories/internal/storage"
	"github.com/nikbrunner/stories/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "cache":
			runCacheStats()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `stories - terminal reader for the stories API

Usage:
  stories               Open interactive TUI
  stories <query>       Fuzzy search cached stories
  stories cache         Show offline cache statistics
  stories help          Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Back / open story details
    gg/G        Jump to top/bottom
    Tab         Switch between Stories and Bookmarks

  Actions:
    b           Add or remove bookmark
    /           Filter the current list
    y           Copy title and summary
    r           Reload

  Other:
    ?           Show help overlay
    q           Quit

Configuration:
  ~/.config/stories/config.json
  STORIES_ENDPOINT overrides the API endpoint
`
	fmt.Print(help)
}

func loadConfig() *storage.Config {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func openCache(cfg *storage.Config) *storage.SQLiteCache {
	cachePath, err := storage.ResolveCachePath(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting cache path: %v\n", err)
		os.Exit(1)
	}

	cache, err := storage.NewSQLiteCache(cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
		os.Exit(1)
	}
	return cache
}

// setupLogger logs to a file, since stdout belongs to the TUI.
func setupLogger(cfg *storage.Config) (*slog.Logger, io.Closer) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logPath, err := storage.ResolveLogPath(cfg)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f
}

// runTUI runs the full interactive TUI.
func runTUI() {
	cfg := loadConfig()

	logger, logFile := setupLogger(cfg)
	defer logFile.Close()

	client, err := api.NewClient(api.ClientParams{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout(),
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		os.Exit(1)
	}

	cache := openCache(cfg)
	defer cache.Close()

	logger.Info("starting", "endpoint", client.Endpoint(), "cache", cache.Path())

	src := source.New(source.Params{Remote: client, Cache: cache, Logger: logger})
	app := tui.NewApp(tui.AppParams{Source: src, Logger: logger})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runCacheStats prints what the offline cache holds.
func runCacheStats() {
	cfg := loadConfig()
	cache := openCache(cfg)
	defer cache.Close()

	stats, err := cache.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cache: %s\n", cache.Path())
	fmt.Printf("  %d stories (%d listed, %d bookmarked)\n", stats.Stories, stats.Listed, stats.Bookmarked)
}

// runQuickSearch fuzzy searches the cached stories and prints the pick.
func runQuickSearch(query string) {
	cfg := loadConfig()
	cache := openCache(cfg)
	defer cache.Close()

	stories, err := cache.LoadStories()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cached stories: %v\n", err)
		os.Exit(1)
	}

	results := search.FuzzySearchStories(model.NewFeed(stories), query)
	if len(results) == 0 {
		fmt.Printf("No stories found for '%s'\n", query)
		return
	}

	var selected *model.StorySummary
	if len(results) == 1 {
		// Single result - select it directly
		selected = results[0].Story
	} else {
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return
		}
		selected = finalPicker.SelectedStory()
	}

	if selected == nil {
		return
	}

	printStory(selected)
}

func printStory(story *model.StorySummary) {
	marker := ""
	if story.IsBookmarked() {
		marker = "🔖 "
	}
	fmt.Printf("%s%s\n", marker, story.Title)
	if story.Summary != "" {
		fmt.Printf("  %s\n", story.Summary)
	}
	fmt.Printf("  id: %s\n", story.ID)
}
