package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"punini/internal/config"
)

// ErrNotFound reports a track lookup that matched nothing.
var ErrNotFound = errors.New("track not found")

// Store manages library persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the library database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

const trackColumns = `id, path, title, artist, album, year, track_no,
	duration_ms, has_lyrics, untagged, mtime, size, created_at, updated_at`

// Upsert inserts a track row or replaces the metadata of an existing path.
// The returned track carries the assigned ID.
func (s *Store) Upsert(ctx context.Context, track Track) (Track, error) {
	if track.Path == "" {
		return Track{}, errors.New("track path is required")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tracks (
            path, title, artist, album, year, track_no,
            duration_ms, has_lyrics, untagged, mtime, size, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            title = excluded.title,
            artist = excluded.artist,
            album = excluded.album,
            year = excluded.year,
            track_no = excluded.track_no,
            duration_ms = excluded.duration_ms,
            has_lyrics = excluded.has_lyrics,
            untagged = excluded.untagged,
            mtime = excluded.mtime,
            size = excluded.size,
            updated_at = excluded.updated_at`,
		track.Path,
		track.Title,
		track.Artist,
		track.Album,
		track.Year,
		track.TrackNo,
		track.Duration.Milliseconds(),
		boolToInt(track.HasLyrics),
		boolToInt(track.Untagged),
		track.ModTime.UTC().Unix(),
		track.Size,
		now,
		now,
	)
	if err != nil {
		return Track{}, fmt.Errorf("upsert track: %w", err)
	}

	stored, err := s.GetByPath(ctx, track.Path)
	if err != nil {
		return Track{}, err
	}
	return *stored, nil
}

// GetByPath fetches one track by its file path.
func (s *Store) GetByPath(ctx context.Context, path string) (*Track, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+trackColumns+` FROM tracks WHERE path = ?`, path)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get track by path: %w", err)
	}
	return &track, nil
}

// GetByID fetches one track by row ID.
func (s *Store) GetByID(ctx context.Context, id int64) (*Track, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+trackColumns+` FROM tracks WHERE id = ?`, id)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get track by id: %w", err)
	}
	return &track, nil
}

// List returns every track, collated case-insensitively by file name so the
// browser shows a stable human ordering.
func (s *Store) List(ctx context.Context) ([]Track, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+trackColumns+` FROM tracks`)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan track row: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}

	sortTracks(tracks)
	return tracks, nil
}

// AllPaths returns the set of indexed file paths.
func (s *Store) AllPaths(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM tracks`)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scan path: %w", err)
		}
		paths[path] = struct{}{}
	}
	return paths, rows.Err()
}

// Delete removes a track row by path. Deleting an unknown path is a no-op.
func (s *Store) Delete(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tracks WHERE path = ?`, path); err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	return nil
}

// Count returns the number of indexed tracks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM tracks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(row rowScanner) (Track, error) {
	var (
		track      Track
		durationMs int64
		hasLyrics  int
		untagged   int
		mtime      int64
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(
		&track.ID,
		&track.Path,
		&track.Title,
		&track.Artist,
		&track.Album,
		&track.Year,
		&track.TrackNo,
		&durationMs,
		&hasLyrics,
		&untagged,
		&mtime,
		&track.Size,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return Track{}, err
	}
	track.Duration = time.Duration(durationMs) * time.Millisecond
	track.HasLyrics = hasLyrics != 0
	track.Untagged = untagged != 0
	track.ModTime = time.Unix(mtime, 0).UTC()
	track.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	track.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return track, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// sortTracks orders tracks by file name using ICU-style collation so
// "Étude.flac" files sort with their unaccented neighbors.
func sortTracks(tracks []Track) {
	collator := collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(tracks, func(i, j int) bool {
		if cmp := collator.CompareString(tracks[i].FileName(), tracks[j].FileName()); cmp != 0 {
			return cmp < 0
		}
		return tracks[i].Path < tracks[j].Path
	})
}
