package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docsect/internal/tabular"
)

// CSVParser handles CSV files. The whole file becomes a single table
// grid on one page, rendered by the table renderer.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) ([]Page, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	grid := make(tabular.Grid, len(records))
	for i, record := range records {
		row := make([]*string, len(record))
		for j := range record {
			row[j] = &records[i][j]
		}
		grid[i] = row
	}

	return []Page{{Number: 1, Tables: []tabular.Grid{grid}}}, nil
}
