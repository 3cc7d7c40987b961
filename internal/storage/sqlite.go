package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/stories/internal/model"
)

const currentSchemaVersion = 2

// ErrNotCached is returned when a story has never been written to the cache.
var ErrNotCached = errors.New("story not in cache")

// SQLiteCache implements Cache using a SQLite database.
type SQLiteCache struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

var _ Cache = (*SQLiteCache)(nil)

// NewSQLiteCache opens (and migrates) the cache database at path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	c := &SQLiteCache{db: db, path: path, now: time.Now}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

// Path returns the database file path.
func (c *SQLiteCache) Path() string {
	return c.path
}

// Close closes the database connection.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// SchemaVersion returns the migrated schema version.
func (c *SQLiteCache) SchemaVersion() (int, error) {
	var version int
	err := c.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

// migrate runs database migrations.
func (c *SQLiteCache) migrate() error {
	var version int
	err := c.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := c.migrateV1(); err != nil {
			return err
		}
	}

	if version < currentSchemaVersion {
		if err := c.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the story summary table.
func (c *SQLiteCache) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS stories (
			id TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			bookmark_id TEXT,
			position INTEGER,
			updated_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_stories_bookmark_id ON stories(bookmark_id) WHERE bookmark_id IS NOT NULL;
		CREATE INDEX IF NOT EXISTS idx_stories_position ON stories(position) WHERE position IS NOT NULL;

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := c.db.Exec(schema)
	return err
}

// migrateV2 adds the details columns and bookmark ordering.
func (c *SQLiteCache) migrateV2() error {
	migration := `
		ALTER TABLE stories ADD COLUMN text TEXT;
		ALTER TABLE stories ADD COLUMN author TEXT;
		ALTER TABLE stories ADD COLUMN bookmark_position INTEGER;
		UPDATE schema_version SET version = 2;
	`
	_, err := c.db.Exec(migration)
	return err
}

func (c *SQLiteCache) timestamp() string {
	return c.now().UTC().Format(time.RFC3339Nano)
}

// LoadStories returns the last saved story list, in list order.
func (c *SQLiteCache) LoadStories() ([]model.StorySummary, error) {
	rows, err := c.db.Query(`
		SELECT id, title, summary, bookmark_id
		FROM stories
		WHERE position IS NOT NULL
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := []model.StorySummary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}

	return stories, rows.Err()
}

// SaveStories replaces the cached story list.
// Stories dropped from the list stay cached for bookmarks and details.
func (c *SQLiteCache) SaveStories(stories []model.StorySummary) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE stories SET position = NULL"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stories (id, title, summary, bookmark_id, position, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			bookmark_id = excluded.bookmark_id,
			position = excluded.position,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := c.timestamp()
	for i, s := range stories {
		if _, err := stmt.Exec(s.ID, s.Title, s.Summary, s.BookmarkID, i, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadBookmarks returns the cached bookmarks, in the order last saved.
func (c *SQLiteCache) LoadBookmarks() ([]model.Bookmark, error) {
	rows, err := c.db.Query(`
		SELECT id, title, summary, bookmark_id
		FROM stories
		WHERE bookmark_id IS NOT NULL
		ORDER BY bookmark_position IS NULL, bookmark_position, updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, model.Bookmark{ID: *s.BookmarkID, Story: s})
	}

	return bookmarks, rows.Err()
}

// SaveBookmarks replaces the set of bookmarked stories.
func (c *SQLiteCache) SaveBookmarks(bookmarks []model.Bookmark) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE stories SET bookmark_id = NULL, bookmark_position = NULL"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stories (id, title, summary, bookmark_id, bookmark_position, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			bookmark_id = excluded.bookmark_id,
			bookmark_position = excluded.bookmark_position,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := c.timestamp()
	for i, b := range bookmarks {
		s := b.Story
		if _, err := stmt.Exec(s.ID, s.Title, s.Summary, b.ID, i, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// PutStory upserts a single summary without touching list positions.
func (c *SQLiteCache) PutStory(story model.StorySummary) error {
	_, err := c.db.Exec(`
		INSERT INTO stories (id, title, summary, bookmark_id, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			bookmark_id = excluded.bookmark_id,
			updated_at = excluded.updated_at
	`, story.ID, story.Title, story.Summary, story.BookmarkID, c.timestamp())
	return err
}

// PutStoryDetails upserts a full story.
func (c *SQLiteCache) PutStoryDetails(story model.Story) error {
	_, err := c.db.Exec(`
		INSERT INTO stories (id, title, summary, bookmark_id, text, author, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			bookmark_id = excluded.bookmark_id,
			text = excluded.text,
			author = excluded.author,
			updated_at = excluded.updated_at
	`, story.ID, story.Title, story.Summary, story.BookmarkID, story.Text, story.Author, c.timestamp())
	return err
}

// LoadStory returns a cached story. Text and Author are empty when only
// the summary was ever cached. Returns ErrNotCached if the id is unknown.
func (c *SQLiteCache) LoadStory(id string) (*model.Story, error) {
	var story model.Story
	var bookmarkID, text, author sql.NullString

	err := c.db.QueryRow(`
		SELECT id, title, summary, bookmark_id, text, author
		FROM stories
		WHERE id = ?
	`, id).Scan(&story.ID, &story.Title, &story.Summary, &bookmarkID, &text, &author)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, err
	}

	if bookmarkID.Valid {
		story.BookmarkID = &bookmarkID.String
	}
	story.Text = text.String
	story.Author = author.String

	return &story, nil
}

// ClearBookmark drops the bookmark reference from whichever story holds it.
func (c *SQLiteCache) ClearBookmark(bookmarkID string) error {
	_, err := c.db.Exec(`
		UPDATE stories
		SET bookmark_id = NULL, bookmark_position = NULL, updated_at = ?
		WHERE bookmark_id = ?
	`, c.timestamp(), bookmarkID)
	return err
}

// Stats counts cached stories.
func (c *SQLiteCache) Stats() (CacheStats, error) {
	var stats CacheStats
	err := c.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(position),
			COUNT(bookmark_id)
		FROM stories
	`).Scan(&stats.Stories, &stats.Listed, &stats.Bookmarked)
	return stats, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (model.StorySummary, error) {
	var s model.StorySummary
	var bookmarkID sql.NullString

	if err := row.Scan(&s.ID, &s.Title, &s.Summary, &bookmarkID); err != nil {
		return s, err
	}
	if bookmarkID.Valid {
		s.BookmarkID = &bookmarkID.String
	}
	return s, nil
}
