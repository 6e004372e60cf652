package codec

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okian/quantumtech/internal/adapters/repository"
	"github.com/okian/quantumtech/internal/domain/model"
)

// SQLiteCodec exports a snapshot as a standalone SQLite database file.
type SQLiteCodec struct{}

// NewSQLiteCodec creates a new SQLite codec
func NewSQLiteCodec() *SQLiteCodec {
	return &SQLiteCodec{}
}

// Format returns the codec format identifier
func (c *SQLiteCodec) Format() string { return FormatSQLite }

// ContentType returns the MIME type of the output.
func (c *SQLiteCodec) ContentType() string { return "application/vnd.sqlite3" }

// Export builds the database in a temporary directory and streams the file to w.
func (c *SQLiteCodec) Export(snap model.Snapshot, w io.Writer) error {
	dir, err := os.MkdirTemp("", "quantumtech-export-*")
	if err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "quantumtech.db")
	ctx := context.Background()
	store, err := repository.NewSQLiteStore(ctx, path, repository.WithJournalMode("DELETE"))
	if err != nil {
		return err
	}
	if err := store.Load(ctx, snap); err != nil {
		_ = store.Close()
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("close export database: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open export database: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("stream export database: %w", err)
	}
	return nil
}
