package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
)

// MemoryDSN opens a private in-memory SQLite database.
const MemoryDSN = ":memory:"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS discoveries (
	position    INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	year        INTEGER NOT NULL,
	importance  INTEGER NOT NULL CHECK (importance BETWEEN 0 AND 100),
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS technologies (
	position          INTEGER PRIMARY KEY,
	name              TEXT NOT NULL UNIQUE,
	year              INTEGER NOT NULL,
	impact_billions   REAL NOT NULL,
	sector            TEXT NOT NULL,
	related_discovery TEXT NOT NULL,
	everyday_devices  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS category_usages (
	position           INTEGER PRIMARY KEY,
	category           TEXT NOT NULL,
	technologies_used  TEXT NOT NULL,
	product_percentage INTEGER NOT NULL CHECK (product_percentage BETWEEN 0 AND 100),
	example_device     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS correspondences (
	position        INTEGER PRIMARY KEY,
	discovery_name  TEXT NOT NULL,
	discovery_year  INTEGER NOT NULL,
	technology_name TEXT NOT NULL,
	technology_year INTEGER NOT NULL,
	lag_years       INTEGER NOT NULL,
	unlisted        INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore mirrors a snapshot into SQLite and serves reads from it.
type SQLiteStore struct {
	db   *sql.DB
	path string

	journalMode string
	busyTimeout int
}

// NewSQLiteStore opens (or creates) the database at path and applies the
// schema. Use MemoryDSN for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	s := &SQLiteStore{
		path:        path,
		journalMode: defaultJournalMode,
		busyTimeout: defaultBusyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// Every connection to ":memory:" is a separate database.
	if path == MemoryDSN {
		db.SetMaxOpenConns(1)
	}
	s.db = db

	pragmas := []string{
		fmt.Sprintf("PRAGMA journal_mode=%s", s.journalMode),
		fmt.Sprintf("PRAGMA busy_timeout=%d", s.busyTimeout),
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return s, nil
}

// Path returns the database location.
func (s *SQLiteStore) Path() string { return s.path }

// Load replaces the stored tables with snap in a single transaction.
func (s *SQLiteStore) Load(ctx context.Context, snap model.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range dataset.TableNames {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, d := range snap.Discoveries {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO discoveries (position, name, year, importance, description) VALUES (?, ?, ?, ?, ?)`,
			i, d.Name, d.Year, d.Importance, d.Description,
		); err != nil {
			return fmt.Errorf("insert discovery %q: %w", d.Name, err)
		}
	}
	for i, t := range snap.Technologies {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO technologies (position, name, year, impact_billions, sector, related_discovery, everyday_devices)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, t.Name, t.Year, t.ImpactBillions, t.Sector, t.RelatedDiscovery, t.EverydayDevices,
		); err != nil {
			return fmt.Errorf("insert technology %q: %w", t.Name, err)
		}
	}
	for i, u := range snap.CategoryUsages {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO category_usages (position, category, technologies_used, product_percentage, example_device)
			 VALUES (?, ?, ?, ?, ?)`,
			i, u.Category, u.TechnologiesUsed, u.ProductPercentage, u.ExampleDevice,
		); err != nil {
			return fmt.Errorf("insert category usage %q: %w", u.Category, err)
		}
	}
	for i, c := range snap.Correspondences {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO correspondences (position, discovery_name, discovery_year, technology_name, technology_year, lag_years, unlisted)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, c.DiscoveryName, c.DiscoveryYear, c.TechnologyName, c.TechnologyYear, c.LagYears, c.Unlisted,
		); err != nil {
			return fmt.Errorf("insert correspondence %q: %w", c.DiscoveryName+" -> "+c.TechnologyName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

// Snapshot implements Store.
func (s *SQLiteStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	var (
		snap model.Snapshot
		err  error
	)
	if snap.Discoveries, err = s.discoveries(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Technologies, err = s.technologies(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.CategoryUsages, err = s.categoryUsages(ctx); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Correspondences, err = s.correspondences(ctx); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLiteStore) discoveries(ctx context.Context) ([]model.Discovery, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT year, name, importance, description FROM discoveries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query discoveries: %w", err)
	}
	defer rows.Close()

	var out []model.Discovery
	for rows.Next() {
		var d model.Discovery
		if err := rows.Scan(&d.Year, &d.Name, &d.Importance, &d.Description); err != nil {
			return nil, fmt.Errorf("scan discovery: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

const technologyColumns = `year, name, impact_billions, sector, related_discovery, everyday_devices`

func scanTechnology(row interface{ Scan(...any) error }) (model.Technology, error) {
	var t model.Technology
	err := row.Scan(&t.Year, &t.Name, &t.ImpactBillions, &t.Sector, &t.RelatedDiscovery, &t.EverydayDevices)
	return t, err
}

func (s *SQLiteStore) technologies(ctx context.Context) ([]model.Technology, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+technologyColumns+` FROM technologies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query technologies: %w", err)
	}
	defer rows.Close()

	var out []model.Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) categoryUsages(ctx context.Context) ([]model.CategoryUsage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, technologies_used, product_percentage, example_device FROM category_usages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query category usages: %w", err)
	}
	defer rows.Close()

	var out []model.CategoryUsage
	for rows.Next() {
		var u model.CategoryUsage
		if err := rows.Scan(&u.Category, &u.TechnologiesUsed, &u.ProductPercentage, &u.ExampleDevice); err != nil {
			return nil, fmt.Errorf("scan category usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) correspondences(ctx context.Context) ([]model.Correspondence, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT discovery_name, discovery_year, technology_name, technology_year, lag_years, unlisted
		 FROM correspondences ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query correspondences: %w", err)
	}
	defer rows.Close()

	var out []model.Correspondence
	for rows.Next() {
		var c model.Correspondence
		if err := rows.Scan(&c.DiscoveryName, &c.DiscoveryYear, &c.TechnologyName, &c.TechnologyYear, &c.LagYears, &c.Unlisted); err != nil {
			return nil, fmt.Errorf("scan correspondence: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Technology implements Store.
func (s *SQLiteStore) Technology(ctx context.Context, name string) (model.Technology, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+technologyColumns+` FROM technologies WHERE name = ?`, name)
	t, err := scanTechnology(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Technology{}, fmt.Errorf("%w: technology %q", ErrNotFound, name)
	}
	if err != nil {
		return model.Technology{}, fmt.Errorf("get technology %q: %w", name, err)
	}
	return t, nil
}

// Count implements Store.
func (s *SQLiteStore) Count(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int, len(dataset.TableNames))
	for _, table := range dataset.TableNames {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		out[table] = n
	}
	return out, nil
}

// Kind implements Store.
func (s *SQLiteStore) Kind() string { return KindSQLite }

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
