package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/quantumtech/internal/domain/model"
)

// CSVCodec exports one table as CSV with a header row.
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string { return FormatCSV }

// ContentType returns the MIME type of the output.
func (c *CSVCodec) ContentType() string { return "text/csv; charset=utf-8" }

// Export writes the single non-empty table of snap. Use Select first.
func (c *CSVCodec) Export(snap model.Snapshot, w io.Writer) error {
	records, err := csvRecords(snap)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}
	return nil
}

func csvRecords(snap model.Snapshot) ([][]string, error) {
	var (
		tables  int
		records [][]string
	)
	if len(snap.Discoveries) > 0 {
		tables++
		records = [][]string{{"year", "name", "importance", "description"}}
		for _, d := range snap.Discoveries {
			records = append(records, []string{itoa(d.Year), d.Name, itoa(d.Importance), d.Description})
		}
	}
	if len(snap.Technologies) > 0 {
		tables++
		records = [][]string{{"year", "name", "economic_impact_billions", "sector", "related_discovery", "everyday_devices"}}
		for _, t := range snap.Technologies {
			records = append(records, []string{
				itoa(t.Year), t.Name, strconv.FormatFloat(t.ImpactBillions, 'f', -1, 64),
				t.Sector, t.RelatedDiscovery, t.EverydayDevices,
			})
		}
	}
	if len(snap.CategoryUsages) > 0 {
		tables++
		records = [][]string{{"category", "technologies_used", "product_percentage", "example_device"}}
		for _, u := range snap.CategoryUsages {
			records = append(records, []string{u.Category, u.TechnologiesUsed, itoa(u.ProductPercentage), u.ExampleDevice})
		}
	}
	if len(snap.Correspondences) > 0 {
		tables++
		records = [][]string{{"discovery_name", "discovery_year", "technology_name", "technology_year", "lag_years", "unlisted"}}
		for _, r := range snap.Correspondences {
			records = append(records, []string{
				r.DiscoveryName, itoa(r.DiscoveryYear), r.TechnologyName, itoa(r.TechnologyYear),
				itoa(r.LagYears), strconv.FormatBool(r.Unlisted),
			})
		}
	}
	if tables != 1 {
		return nil, fmt.Errorf("%w: snapshot has %d non-empty tables", ErrSingleTable, tables)
	}
	return records, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
