package provider

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVProvider reads ledger rows from a local CSV export of the canonical
// sheet. The first record must be the header row carrying the canonical
// column names.
type CSVProvider struct {
	path string
}

// NewCSVProvider creates a provider for the given CSV file path.
func NewCSVProvider(path string) *CSVProvider {
	return &CSVProvider{path: path}
}

// FetchRows reads the file and returns one column->value mapping per data
// row, in file order. Short rows are padded with empty strings so column
// presence is decided by the header alone.
func (p *CSVProvider) FetchRows() ([]map[string]string, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ledger csv %s has no header row", p.path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
