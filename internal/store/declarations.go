package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jroosing/fleetdns/internal/declaration"
)

// SaveDeclaration stores a validated declaration as a new version and
// returns the assigned version number.
func (db *DB) SaveDeclaration(decl *declaration.Declaration) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	source, err := decl.Marshal()
	if err != nil {
		return 0, err
	}

	result, err := db.conn.Exec(
		"INSERT INTO declarations (domain, source, created_at) VALUES (?, ?, ?)",
		decl.Zone.Domain, string(source), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save declaration: %w", err)
	}

	version, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get declaration version: %w", err)
	}
	return version, nil
}

// CurrentDeclaration returns the latest stored declaration and its
// version. Returns ErrNoDeclaration on a fresh database.
func (db *DB) CurrentDeclaration() (*declaration.Declaration, int64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var (
		version int64
		source  string
	)
	err := db.conn.QueryRow(
		"SELECT version, source FROM declarations ORDER BY version DESC LIMIT 1",
	).Scan(&version, &source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrNoDeclaration
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load declaration: %w", err)
	}

	decl, err := declaration.Parse([]byte(source))
	if err != nil {
		return nil, 0, fmt.Errorf("stored declaration v%d is invalid: %w", version, err)
	}
	return decl, version, nil
}

// DeclarationVersion returns the latest declaration version, 0 when
// none is stored.
func (db *DB) DeclarationVersion() (int64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var version sql.NullInt64
	err := db.conn.QueryRow("SELECT MAX(version) FROM declarations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get declaration version: %w", err)
	}
	return version.Int64, nil
}
