package treedist

import (
	"database/sql"
)

const distanceSchema = `
CREATE TABLE IF NOT EXISTS tree_distance (
    scope    TEXT NOT NULL,
    lo       TEXT NOT NULL,
    hi       TEXT NOT NULL,
    distance REAL NOT NULL,
    PRIMARY KEY(scope, lo, hi)
);
`

// EnsureSchema creates the tree_distance table in the provided database if it
// does not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(distanceSchema)
	return err
}
