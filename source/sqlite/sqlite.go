package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwantia/vls/data"
	"github.com/mwantia/vls/source"
	"github.com/tidwall/btree"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (CGO_ENABLED=0 compatible)
)

// SQLiteSource serves listings from a SQLite catalog:
//
// Layer 1: In-memory B-tree for fast key lookups
// Layer 2: SQLite table (vls_entries) for persistent entry metadata
type SQLiteSource struct {
	mu sync.RWMutex
	db *sql.DB

	// In-memory B-tree for fast key lookups
	keys *btree.Map[string, string]
}

// NewSQLite creates a SQLite-backed listing source. The dbPath can be
// ":memory:" for an in-memory database or a file path.
func NewSQLite(dbPath string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteSource{
		db:   db,
		keys: btree.NewMap[string, string](0),
	}, nil
}

// Name returns the identifier name defined for this source
func (*SQLiteSource) Name() string {
	return "sqlite"
}

// Open initializes the schema and warms the key index.
func (ss *SQLiteSource) Open(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	schema := `
	CREATE TABLE IF NOT EXISTS vls_entries (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		mode INTEGER NOT NULL,
		nlink INTEGER NOT NULL DEFAULT 1,
		owner TEXT NOT NULL DEFAULT 'root',
		grp TEXT NOT NULL DEFAULT 'root',
		size INTEGER NOT NULL DEFAULT 0,
		blocks INTEGER NOT NULL DEFAULT 0,
		modify_time INTEGER NOT NULL,
		link_target TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_vls_entries_key ON vls_entries(key);
	`
	if _, err := ss.db.ExecContext(ctx, schema); err != nil {
		return err
	}

	rows, err := ss.db.QueryContext(ctx, `SELECT key, id FROM vls_entries`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key, id string
		if err := rows.Scan(&key, &id); err != nil {
			return err
		}
		ss.keys.Set(key, id)
	}

	return rows.Err()
}

// Close is part of the lifecycle behaviour and gets called when the
// source is no longer needed.
func (ss *SQLiteSource) Close(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.keys.Clear()
	return ss.db.Close()
}

// GetCapabilities returns the long-format fields this source can
// populate with real values.
func (ss *SQLiteSource) GetCapabilities() *source.Capabilities {
	return &source.Capabilities{
		Capabilities: []source.Capability{
			source.CapabilityOwnership,
			source.CapabilityLinkCount,
			source.CapabilityModTime,
			source.CapabilitySymlinks,
		},
	}
}

// Put stores a regular file entry at key, creating missing parents.
func (ss *SQLiteSource) Put(ctx context.Context, key string, size int64, mode data.FileMode) (*data.Entry, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	key = cleanKey(key)
	if key == "" {
		return nil, data.ErrInvalid
	}

	entry := data.NewFileEntry(path.Base(key), size, mode)
	entry.Path = key
	return entry, ss.store(ctx, key, entry)
}

// Mkdir creates a directory entry at key, including missing parents.
func (ss *SQLiteSource) Mkdir(ctx context.Context, key string, mode data.FileMode) (*data.Entry, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	key = cleanKey(key)
	if key == "" {
		return nil, data.ErrInvalid
	}

	entry := data.NewDirEntry(path.Base(key), mode)
	entry.Path = key
	return entry, ss.store(ctx, key, entry)
}

func (ss *SQLiteSource) store(ctx context.Context, key string, entry *data.Entry) error {
	if _, exists := ss.keys.Get(key); exists {
		return data.ErrExist
	}

	if parent := path.Dir(key); parent != "." && parent != "/" {
		if _, exists := ss.keys.Get(parent); !exists {
			parentEntry := data.NewDirEntry(path.Base(parent), 0755)
			parentEntry.Path = parent
			if err := ss.store(ctx, parent, parentEntry); err != nil {
				return err
			}
		}
	}

	id := uuid.Must(uuid.NewV7()).String()
	_, err := ss.db.ExecContext(ctx, `
		INSERT INTO vls_entries (id, key, mode, nlink, owner, grp, size, blocks, modify_time, link_target)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, key, int64(entry.Mode), int64(entry.Nlink), entry.Owner, entry.Group,
		entry.Size, entry.Blocks, entry.ModTime.Unix(), nullString(entry.LinkTarget))
	if err != nil {
		return err
	}

	ss.keys.Set(key, id)
	return nil
}

// Stat returns metadata for the entry at path.
func (ss *SQLiteSource) Stat(ctx context.Context, target string) (*data.Entry, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	key := cleanKey(target)
	if key == "" {
		return data.NewDirEntry("/", 0755), nil
	}

	id, exists := ss.keys.Get(key)
	if !exists {
		return nil, data.ErrNotExist
	}

	return ss.readEntry(ctx, id)
}

// List returns all entries in the directory at path. Listing a
// non-directory returns that entry as a singleton.
func (ss *SQLiteSource) List(ctx context.Context, target string) ([]*data.Entry, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	key := cleanKey(target)
	if key != "" {
		id, exists := ss.keys.Get(key)
		if !exists {
			return nil, data.ErrNotExist
		}
		entry, err := ss.readEntry(ctx, id)
		if err != nil {
			return nil, err
		}
		if !entry.Mode.IsDir() {
			return []*data.Entry{entry}, nil
		}
	}

	prefix := key
	if prefix != "" {
		prefix += "/"
	}

	rows, err := ss.db.QueryContext(ctx, `
		SELECT key, mode, nlink, owner, grp, size, blocks, modify_time, link_target
		FROM vls_entries WHERE key LIKE ? || '%' ORDER BY key
	`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*data.Entry, 0)
	for rows.Next() {
		entry, entryKey, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		// Direct children only; deeper descendants keep a slash
		rest := strings.TrimPrefix(entryKey, prefix)
		if rest == "" || strings.Contains(rest, "/") {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (ss *SQLiteSource) readEntry(ctx context.Context, id string) (*data.Entry, error) {
	row := ss.db.QueryRowContext(ctx, `
		SELECT key, mode, nlink, owner, grp, size, blocks, modify_time, link_target
		FROM vls_entries WHERE id = ?
	`, id)

	entry, _, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, data.ErrNotExist
	}
	return entry, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*data.Entry, string, error) {
	var key, owner, group string
	var mode, nlink, size, blocks, modifyTime int64
	var linkTarget sql.NullString

	if err := row.Scan(&key, &mode, &nlink, &owner, &group, &size, &blocks, &modifyTime, &linkTarget); err != nil {
		return nil, "", err
	}

	entry := &data.Entry{
		Name:    path.Base(key),
		Path:    key,
		Mode:    data.FileMode(mode),
		Nlink:   uint64(nlink),
		Owner:   owner,
		Group:   group,
		Size:    size,
		Blocks:  blocks,
		ModTime: time.Unix(modifyTime, 0),
	}
	if linkTarget.Valid {
		entry.LinkTarget = linkTarget.String
	}

	return entry, key, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func cleanKey(target string) string {
	key := path.Clean("/" + target)
	return strings.TrimPrefix(key, "/")
}
