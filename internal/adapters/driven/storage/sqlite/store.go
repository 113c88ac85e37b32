package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docprep/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "history.db"

// Store is a SQLite-based storage providing access to the store interfaces
// through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.docprep/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docprep", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// PreparationStore returns a PreparationStore interface backed by this store.
func (s *Store) PreparationStore() driven.PreparationStore {
	return &preparationStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Preparation Store ====================

// preparationStore implements driven.PreparationStore.
type preparationStore struct {
	store *Store
}

var _ driven.PreparationStore = (*preparationStore)(nil)

// Save stores or replaces the record for an annotation.
func (s *preparationStore) Save(ctx context.Context, record domain.PreparationRecord) error {
	if record.PreparedAt.IsZero() {
		record.PreparedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO preparations (ref, id, cache_token, output_dir, site_name, prepared_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(ref) DO UPDATE SET
			id = excluded.id,
			cache_token = excluded.cache_token,
			output_dir = excluded.output_dir,
			site_name = excluded.site_name,
			prepared_at = excluded.prepared_at
	`, record.Ref, record.ID, record.CacheToken, record.OutputDir, record.SiteName, record.PreparedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving preparation: %w", err)
	}
	return nil
}

// Get retrieves the record for an annotation.
func (s *preparationStore) Get(ctx context.Context, ref string) (*domain.PreparationRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT ref, id, cache_token, output_dir, site_name, prepared_at
		FROM preparations WHERE ref = ?
	`, ref)

	record, err := scanPreparation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning preparation: %w", err)
	}
	return record, nil
}

// List returns all records, most recent first.
func (s *preparationStore) List(ctx context.Context) ([]domain.PreparationRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT ref, id, cache_token, output_dir, site_name, prepared_at
		FROM preparations ORDER BY prepared_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing preparations: %w", err)
	}
	defer rows.Close()

	var records []domain.PreparationRecord
	for rows.Next() {
		record, err := scanPreparation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning preparation: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Delete removes the record for an annotation.
func (s *preparationStore) Delete(ctx context.Context, ref string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM preparations WHERE ref = ?", ref); err != nil {
		return fmt.Errorf("deleting preparation: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPreparation(row scanner) (*domain.PreparationRecord, error) {
	var record domain.PreparationRecord
	if err := row.Scan(&record.Ref, &record.ID, &record.CacheToken,
		&record.OutputDir, &record.SiteName, &record.PreparedAt); err != nil {
		return nil, err
	}
	return &record, nil
}
