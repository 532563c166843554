package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/DevHugoP/sightToScript/pkg/models"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// ErrNotFound is returned when no saved structure matches a lookup.
var ErrNotFound = errors.New("structure not found")

// Store keeps named trees in a sqlite database.
type Store struct {
	db     *sql.DB
	path   string
	logger *logrus.Entry
}

// New opens (creating if needed) the store database inside dataDir.
func New(dataDir string, logger *logrus.Entry) (*Store, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "structures.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{
		db:     db,
		path:   dbPath,
		logger: logger.WithField("component", "store"),
	}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return s, nil
}

// init creates the database schema
func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS structures (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		structure TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		folders INTEGER NOT NULL DEFAULT 0,
		files INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_structures_name ON structures(name);
	CREATE INDEX IF NOT EXISTS idx_structures_created ON structures(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save stores root under name and returns the new record.
func (s *Store) Save(ctx context.Context, name string, root *tree.Node) (*models.SavedStructure, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("save structure: name is required")
	}
	body, err := encode(root)
	if err != nil {
		return nil, fmt.Errorf("save structure: %w", err)
	}

	now := time.Now().UTC()
	rec := &models.SavedStructure{
		ID:          uuid.NewString(),
		Name:        name,
		Structure:   root,
		Fingerprint: tree.Fingerprint(root),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	rec.Folders, rec.Files = tree.Count(root)

	query := `
	INSERT INTO structures (id, name, structure, fingerprint, folders, files, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID, rec.Name, body, rec.Fingerprint, rec.Folders, rec.Files, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert structure: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"id": rec.ID, "name": rec.Name}).Debug("saved structure")
	return rec, nil
}

// Get retrieves a saved structure by id.
func (s *Store) Get(ctx context.Context, id string) (*models.SavedStructure, error) {
	query := `
	SELECT id, name, structure, fingerprint, folders, files, created_at, updated_at
	FROM structures WHERE id = ?
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id), id)
}

// GetByName retrieves the most recently created structure with the given name.
func (s *Store) GetByName(ctx context.Context, name string) (*models.SavedStructure, error) {
	query := `
	SELECT id, name, structure, fingerprint, folders, files, created_at, updated_at
	FROM structures WHERE name = ?
	ORDER BY created_at DESC, rowid DESC LIMIT 1
	`
	return s.scanOne(s.db.QueryRowContext(ctx, query, name), name)
}

// Resolve looks ref up as an id, then as a name, then as an unambiguous id
// prefix of at least four characters (as printed by listings).
func (s *Store) Resolve(ctx context.Context, ref string) (*models.SavedStructure, error) {
	rec, err := s.Get(ctx, ref)
	if err == nil || !errors.Is(err, ErrNotFound) {
		return rec, err
	}
	rec, err = s.GetByName(ctx, ref)
	if err == nil || !errors.Is(err, ErrNotFound) || len(ref) < 4 {
		return rec, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM structures WHERE id LIKE ? LIMIT 2", ref+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return s.Get(ctx, ids[0])
	default:
		return nil, fmt.Errorf("ambiguous id prefix %q", ref)
	}
}

// List returns every saved structure, newest first. Structures are decoded
// so callers get usable trees.
func (s *Store) List(ctx context.Context) ([]*models.SavedStructure, error) {
	query := `
	SELECT id, name, structure, fingerprint, folders, files, created_at, updated_at
	FROM structures ORDER BY created_at DESC, rowid DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.SavedStructure
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update changes the name and/or structure of a saved record.
func (s *Store) Update(ctx context.Context, id string, upd models.StructureUpdate) (*models.SavedStructure, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
	SELECT id, name, structure, fingerprint, folders, files, created_at, updated_at
	FROM structures WHERE id = ?
	`
	rec, err := s.scanOne(tx.QueryRowContext(ctx, query, id), id)
	if err != nil {
		return nil, err
	}

	unchanged := true
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("update structure: name is required")
		}
		unchanged = name == rec.Name
		rec.Name = name
	}
	if upd.Structure != nil && !tree.Equal(upd.Structure, rec.Structure) {
		unchanged = false
		rec.Structure = upd.Structure
		rec.Fingerprint = tree.Fingerprint(upd.Structure)
		rec.Folders, rec.Files = tree.Count(upd.Structure)
	}
	if unchanged {
		return rec, nil
	}
	rec.UpdatedAt = time.Now().UTC()

	body, err := encode(rec.Structure)
	if err != nil {
		return nil, fmt.Errorf("update structure: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE structures
		SET name = ?, structure = ?, fingerprint = ?, folders = ?, files = ?, updated_at = ?
		WHERE id = ?
	`, rec.Name, body, rec.Fingerprint, rec.Folders, rec.Files, rec.UpdatedAt, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("update structure: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a saved structure.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM structures WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete structure: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanOne(row rowScanner, ref string) (*models.SavedStructure, error) {
	rec, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func scan(row rowScanner) (*models.SavedStructure, error) {
	rec := &models.SavedStructure{}
	var body string
	err := row.Scan(
		&rec.ID, &rec.Name, &body, &rec.Fingerprint,
		&rec.Folders, &rec.Files, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Stored documents go through the same schema check as files.
	rec.Structure, err = tree.Decode([]byte(body), tree.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("decode structure %s: %w", rec.ID, err)
	}
	return rec, nil
}

func encode(root *tree.Node) (string, error) {
	if err := tree.Validate(root); err != nil {
		return "", err
	}
	data, err := tree.Encode(root, tree.FormatJSON)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
