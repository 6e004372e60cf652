package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/okian/quantumtech/internal/domain/model"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string { return FormatYAML }

// ContentType returns the MIME type of the output.
func (c *YAMLCodec) ContentType() string { return "application/yaml" }

// Parse decodes a snapshot from YAML
func (c *YAMLCodec) Parse(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return snap, nil
}

// Export writes snap as YAML
func (c *YAMLCodec) Export(snap model.Snapshot, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}
