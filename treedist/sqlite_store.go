package treedist

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// SQLiteStore is a Store backed by the tree_distance table. Each store owns a
// random scope, so several caches can share one database without seeing each
// other's entries. Close removes the scope's rows; nothing is meant to outlive
// the process run. Statements issued through one store are serialized.
type SQLiteStore struct {
	mu    sync.Mutex
	db    *sql.DB
	scope string
}

// NewSQLiteStore creates a SQLite-backed Store. It ensures the tree_distance
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("treedist: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("treedist: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db, scope: uuid.NewString()}, nil
}

// Scope returns the identifier that partitions this store's rows.
func (s *SQLiteStore) Scope() string { return s.scope }

func (s *SQLiteStore) Load(key PairKey) (float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var d float64
	err := s.db.QueryRow(`SELECT distance FROM tree_distance WHERE scope = ? AND lo = ? AND hi = ?`,
		s.scope, key.Lo, key.Hi).Scan(&d)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("treedist: load distance: %w", err)
	}
	return d, true, nil
}

func (s *SQLiteStore) Save(key PairKey, distance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR IGNORE INTO tree_distance(scope, lo, hi, distance) VALUES(?, ?, ?, ?)`,
		s.scope, key.Lo, key.Hi, distance)
	if err != nil {
		return fmt.Errorf("treedist: save distance: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tree_distance WHERE scope = ?`, s.scope).Scan(&n); err != nil {
		return 0, fmt.Errorf("treedist: count distances: %w", err)
	}
	return n, nil
}

// Close deletes every row written by this store. The database itself is owned
// by the caller and stays open.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM tree_distance WHERE scope = ?`, s.scope)
	return err
}

var _ Store = (*SQLiteStore)(nil)
