// Package codec encodes dataset snapshots for export and decodes the
// text formats back.
package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
)

// Importer decodes a snapshot from a stream.
type Importer interface {
	Parse(r io.Reader) (model.Snapshot, error)
	Format() string
}

// Exporter encodes a snapshot to a stream.
type Exporter interface {
	Export(snap model.Snapshot, w io.Writer) error
	Format() string
	ContentType() string
}

// Registry maps format names to exporters and, where supported, importers.
type Registry struct {
	exporters   map[string]Exporter
	importers   map[string]Importer
	order       []string
	importOrder []string
}

// NewRegistry registers the given exporters under their Format().
// Exporters that also implement Importer are registered as importers.
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{
		exporters: make(map[string]Exporter, len(exporters)),
		importers: make(map[string]Importer, len(exporters)),
	}
	for _, e := range exporters {
		if _, dup := r.exporters[e.Format()]; !dup {
			r.order = append(r.order, e.Format())
		}
		r.exporters[e.Format()] = e
		if imp, ok := e.(Importer); ok {
			if _, dup := r.importers[imp.Format()]; !dup {
				r.importOrder = append(r.importOrder, imp.Format())
			}
			r.importers[imp.Format()] = imp
		}
	}
	return r
}

// Default returns a registry with every built-in exporter.
func Default() *Registry {
	return NewRegistry(NewJSONCodec(), NewYAMLCodec(), NewCSVCodec(), NewSQLiteCodec())
}

// Exporter returns the exporter for format. Empty means JSON.
func (r *Registry) Exporter(format string) (Exporter, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" {
		name = FormatJSON
	}
	e, ok := r.exporters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return e, nil
}

// Importer returns the importer for format. Empty means JSON.
func (r *Registry) Importer(format string) (Importer, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" {
		name = FormatJSON
	}
	imp, ok := r.importers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot be imported", ErrUnknownFormat, format)
	}
	return imp, nil
}

// Formats lists the registered format names in registration order.
func (r *Registry) Formats() []string {
	return append([]string(nil), r.order...)
}

// ImportFormats lists the formats that can be parsed back, in registration order.
func (r *Registry) ImportFormats() []string {
	return append([]string(nil), r.importOrder...)
}

// Select keeps only table in snap. An empty table keeps everything.
func Select(snap model.Snapshot, table string) (model.Snapshot, error) {
	switch table {
	case "":
		return snap, nil
	case dataset.TableDiscoveries:
		return model.Snapshot{Discoveries: snap.Discoveries}, nil
	case dataset.TableTechnologies:
		return model.Snapshot{Technologies: snap.Technologies}, nil
	case dataset.TableCategoryUsages:
		return model.Snapshot{CategoryUsages: snap.CategoryUsages}, nil
	case dataset.TableCorrespondences:
		return model.Snapshot{Correspondences: snap.Correspondences}, nil
	}
	return model.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownTable, table)
}
