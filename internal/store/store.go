package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"kingdom/internal/core"
)

// DefaultFileName is the database file created by NewStore.
const DefaultFileName = "history.db"

// Store is the SQLite-backed home of a user's posts and hashtag history.
// Hashtag performance rows are only ever inserted or updated.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the history database inside dataDir.
func NewStore(dataDir string) (*Store, error) {
	return Open(filepath.Join(dataDir, DefaultFileName))
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{
		db:   db,
		path: path,
	}

	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// initialize creates the necessary tables
func (s *Store) initialize() error {
	performanceTable := `
	CREATE TABLE IF NOT EXISTS hashtag_performance (
		user_id TEXT NOT NULL,
		hashtag TEXT NOT NULL,
		times_used INTEGER NOT NULL DEFAULT 0,
		avg_engagement REAL NOT NULL DEFAULT 0,
		reach_increase REAL NOT NULL DEFAULT 0,
		conversion_rate REAL NOT NULL DEFAULT 0,
		trending_score REAL NOT NULL DEFAULT 0,
		updated_at DATETIME,
		PRIMARY KEY (user_id, hashtag)
	);`

	postsTable := `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		platform TEXT NOT NULL,
		content TEXT,
		hashtags TEXT,
		engagement REAL NOT NULL DEFAULT 0,
		reach REAL NOT NULL DEFAULT 0,
		conversions INTEGER NOT NULL DEFAULT 0,
		posted_at DATETIME NOT NULL
	);`

	postsIndex := `CREATE INDEX IF NOT EXISTS idx_posts_user_platform_time ON posts (user_id, platform, posted_at);`

	for _, stmt := range []string{performanceTable, postsTable, postsIndex} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveHashtagPerformance inserts or replaces one user's record for a hashtag.
func (s *Store) SaveHashtagPerformance(ctx context.Context, userID string, perf core.HashtagPerformance) error {
	return saveHashtagPerformance(ctx, s.db, userID, perf)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveHashtagPerformance(ctx context.Context, db execer, userID string, perf core.HashtagPerformance) error {
	tag := core.NormalizeHashtag(perf.Hashtag)
	if tag == "" {
		return errors.New("hashtag cannot be empty")
	}

	query := `
	INSERT INTO hashtag_performance
	(user_id, hashtag, times_used, avg_engagement, reach_increase, conversion_rate, trending_score, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (user_id, hashtag) DO UPDATE SET
		times_used = excluded.times_used,
		avg_engagement = excluded.avg_engagement,
		reach_increase = excluded.reach_increase,
		conversion_rate = excluded.conversion_rate,
		trending_score = excluded.trending_score,
		updated_at = excluded.updated_at`

	_, err := db.ExecContext(ctx, query,
		userID,
		tag,
		perf.TimesUsed,
		perf.AvgEngagement,
		perf.ReachIncrease,
		perf.ConversionRate,
		perf.TrendingScore,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save hashtag %s: %w", tag, err)
	}
	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HashtagPerformance returns one record, or nil if the user never used the tag.
func (s *Store) HashtagPerformance(ctx context.Context, userID, hashtag string) (*core.HashtagPerformance, error) {
	return hashtagPerformance(ctx, s.db, userID, hashtag)
}

func hashtagPerformance(ctx context.Context, db queryRower, userID, hashtag string) (*core.HashtagPerformance, error) {
	query := `
	SELECT hashtag, times_used, avg_engagement, reach_increase, conversion_rate, trending_score
	FROM hashtag_performance WHERE user_id = ? AND hashtag = ?`

	var perf core.HashtagPerformance
	err := db.QueryRowContext(ctx, query, userID, core.NormalizeHashtag(hashtag)).Scan(
		&perf.Hashtag,
		&perf.TimesUsed,
		&perf.AvgEngagement,
		&perf.ReachIncrease,
		&perf.ConversionRate,
		&perf.TrendingScore,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hashtag performance: %w", err)
	}
	return &perf, nil
}

// ListHashtagPerformance returns a user's full history, best average
// engagement first.
func (s *Store) ListHashtagPerformance(ctx context.Context, userID string) ([]core.HashtagPerformance, error) {
	query := `
	SELECT hashtag, times_used, avg_engagement, reach_increase, conversion_rate, trending_score
	FROM hashtag_performance WHERE user_id = ?
	ORDER BY avg_engagement DESC, hashtag ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hashtag performance: %w", err)
	}
	defer rows.Close()

	history := []core.HashtagPerformance{}
	for rows.Next() {
		var perf core.HashtagPerformance
		if err := rows.Scan(
			&perf.Hashtag,
			&perf.TimesUsed,
			&perf.AvgEngagement,
			&perf.ReachIncrease,
			&perf.ConversionRate,
			&perf.TrendingScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hashtag performance: %w", err)
		}
		history = append(history, perf)
	}
	return history, rows.Err()
}

// UsageFunc folds one use of tag into its previous record (nil if none).
type UsageFunc func(prev *core.HashtagPerformance, tag string) core.HashtagPerformance

// RecordPost stores a post and, in the same transaction, folds each of its
// hashtags into the user's performance history with update. A missing ID or
// PostedAt is filled in.
func (s *Store) RecordPost(ctx context.Context, userID string, post core.Post, update UsageFunc) (core.Post, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.PostedAt.IsZero() {
		post.PostedAt = time.Now().UTC()
	}
	post.Platform = core.NormalizePlatform(string(post.Platform))
	if post.Platform == "" {
		return core.Post{}, errors.New("post platform is required")
	}

	tags := make([]string, 0, len(post.Hashtags))
	seen := make(map[string]bool)
	for _, t := range post.Hashtags {
		if n := core.NormalizeHashtag(t); n != "" && !seen[n] {
			seen[n] = true
			tags = append(tags, n)
		}
	}
	post.Hashtags = tags

	encoded, err := json.Marshal(tags)
	if err != nil {
		return core.Post{}, fmt.Errorf("failed to encode hashtags: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO posts (id, user_id, platform, content, hashtags, engagement, reach, conversions, posted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, userID, string(post.Platform), post.Content, string(encoded),
		post.Engagement, post.Reach, post.Conversions, post.PostedAt.UTC(),
	)
	if err != nil {
		return core.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	if update != nil {
		for _, tag := range tags {
			prev, err := hashtagPerformance(ctx, tx, userID, tag)
			if err != nil {
				return core.Post{}, err
			}
			if err := saveHashtagPerformance(ctx, tx, userID, update(prev, tag)); err != nil {
				return core.Post{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return core.Post{}, fmt.Errorf("failed to commit post: %w", err)
	}
	return post, nil
}

// ListPosts returns a user's posts on platform published at or after since,
// oldest first. An empty platform matches every platform and an empty userID
// matches every user.
func (s *Store) ListPosts(ctx context.Context, userID string, platform core.Platform, since time.Time) ([]core.Post, error) {
	query := `
	SELECT id, platform, content, hashtags, engagement, reach, conversions, posted_at
	FROM posts WHERE posted_at >= ?`
	args := []any{since.UTC()}
	if userID != "" {
		query += " AND user_id = ?"
		args = append(args, userID)
	}
	if platform != "" {
		query += " AND platform = ?"
		args = append(args, string(core.NormalizePlatform(string(platform))))
	}
	query += " ORDER BY posted_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []core.Post{}
	for rows.Next() {
		var (
			p       core.Post
			plat    string
			content sql.NullString
			tags    sql.NullString
		)
		if err := rows.Scan(&p.ID, &plat, &content, &tags, &p.Engagement, &p.Reach, &p.Conversions, &p.PostedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.Platform = core.Platform(plat)
		p.Content = content.String
		if tags.Valid && strings.TrimSpace(tags.String) != "" {
			if err := json.Unmarshal([]byte(tags.String), &p.Hashtags); err != nil {
				return nil, fmt.Errorf("failed to decode hashtags for post %s: %w", p.ID, err)
			}
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// UserPosts scopes ListPosts to one user so it can feed a trend history source.
type UserPosts struct {
	store  *Store
	userID string
}

// ForUser returns a post lister for userID.
func (s *Store) ForUser(userID string) *UserPosts {
	return &UserPosts{store: s, userID: userID}
}

// ListPosts returns the user's posts on platform since the given time.
func (u *UserPosts) ListPosts(ctx context.Context, platform core.Platform, since time.Time) ([]core.Post, error) {
	return u.store.ListPosts(ctx, u.userID, platform, since)
}

// Stats contains statistics about the store
type Stats struct {
	PostCount    int
	HashtagCount int
	UserCount    int
	Size         int64
	LastUpdated  time.Time
}

// Stats returns row counts and the database file size.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	queries := []struct {
		query  string
		target *int
	}{
		{"SELECT COUNT(*) FROM posts", &stats.PostCount},
		{"SELECT COUNT(*) FROM hashtag_performance", &stats.HashtagCount},
		{"SELECT COUNT(DISTINCT user_id) FROM hashtag_performance", &stats.UserCount},
	}

	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.target); err != nil {
			return nil, fmt.Errorf("failed to get count: %w", err)
		}
	}

	if fileInfo, err := os.Stat(s.path); err == nil {
		stats.Size = fileInfo.Size()
		stats.LastUpdated = fileInfo.ModTime()
	}

	return stats, nil
}

// CleanupOldPosts removes posts older than maxAge. Hashtag performance is kept.
func (s *Store) CleanupOldPosts(ctx context.Context, maxAge time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE posted_at < ?", time.Now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to clean old posts: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
