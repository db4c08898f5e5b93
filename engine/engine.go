package engine

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// filePragmas are applied to every connection of a file-backed database so
// concurrent writers wait for the lock instead of failing with SQLITE_BUSY.
var filePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
}

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./distances.sqlite"; a busy
// timeout and WAL journaling are added unless the DSN already sets pragmas.
// For in-memory databases, pass MemoryDSN. In-memory databases are limited to
// a single connection, since every new connection would see an empty database.
func Open(dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = MemoryDSN
	}
	memory := IsMemory(dsn)
	if !memory {
		dsn = WithPragmas(dsn)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if memory {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// IsMemory reports whether dsn names an in-memory database.
func IsMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}

// WithPragmas appends the file-database pragmas to dsn. A DSN that already
// carries a _pragma parameter is returned unchanged.
func WithPragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, p := range filePragmas {
		dsn += sep + "_pragma=" + p
		sep = "&"
	}
	return dsn
}
