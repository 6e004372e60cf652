package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/okian/quantumtech/internal/domain/model"
)

// Format names.
const (
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string { return FormatJSON }

// ContentType returns the MIME type of the output.
func (c *JSONCodec) ContentType() string { return "application/json" }

// Parse decodes a snapshot from JSON
func (c *JSONCodec) Parse(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return snap, nil
}

// Export writes snap as indented JSON
func (c *JSONCodec) Export(snap model.Snapshot, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
