// Package sqlite writes the attribution inventory, a queryable SQLite
// export of every resolved figure and every diagnostic produced during a
// build. The database is a derived artifact: each export starts from an
// empty file and the documentation sources remain the source of truth.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/teachbooks/figmeta/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// FigureRecord is one resolved figure destined for the inventory.
type FigureRecord struct {
	Location types.Location
	Metadata types.FigureMetadata
	Origins  map[string]string // metadata field name to origin label
}

// Inventory is an open attribution inventory database.
type Inventory struct {
	db *sql.DB
}

// Create opens a fresh inventory at path, replacing any previous export.
func Create(path string) (*Inventory, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	// Remove any previous export so the schema is always current.
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize inventory schema: %w", err)
	}
	return &Inventory{db: db}, nil
}

// AddFigure records one resolved figure.
func (inv *Inventory) AddFigure(rec FigureRecord) error {
	_, err := inv.db.Exec(
		`INSERT INTO figures (
			id, document, line, figure,
			author, author_origin,
			date, date_origin,
			license, license_origin,
			copyright, copyright_origin,
			source, source_origin
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		generateUUID(),
		rec.Location.Document, rec.Location.Line, rec.Location.Figure,
		rec.Metadata.Author, rec.Origins[types.FieldAuthor],
		rec.Metadata.Date, rec.Origins[types.FieldDate],
		rec.Metadata.License, rec.Origins[types.FieldLicense],
		rec.Metadata.Copyright, rec.Origins[types.FieldCopyright],
		rec.Metadata.Source, rec.Origins[types.FieldSource],
	)
	if err != nil {
		return fmt.Errorf("insert figure %s: %w", rec.Location, err)
	}
	return nil
}

// AddDiagnostic records one diagnostic.
func (inv *Inventory) AddDiagnostic(d types.Diagnostic) error {
	_, err := inv.db.Exec(
		`INSERT INTO diagnostics (id, kind, document, line, figure, message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		generateUUID(),
		d.Kind, d.Location.Document, d.Location.Line, d.Location.Figure,
		d.Message,
	)
	if err != nil {
		return fmt.Errorf("insert diagnostic %s: %w", d.Location, err)
	}
	return nil
}

// FigureCount returns the number of recorded figures.
func (inv *Inventory) FigureCount() (int, error) {
	var n int
	err := inv.db.QueryRow(`SELECT COUNT(*) FROM figures`).Scan(&n)
	return n, err
}

// DiagnosticCount returns the number of recorded diagnostics.
func (inv *Inventory) DiagnosticCount() (int, error) {
	var n int
	err := inv.db.QueryRow(`SELECT COUNT(*) FROM diagnostics`).Scan(&n)
	return n, err
}

// Close flushes and closes the database.
func (inv *Inventory) Close() error {
	if inv.db == nil {
		return nil
	}
	err := inv.db.Close()
	inv.db = nil
	return err
}

// generateUUID returns a new UUID v7 for row IDs, falling back to v4 if
// the clock-based generator fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
