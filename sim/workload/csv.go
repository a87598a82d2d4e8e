package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSVFile reads a process set in the course CSV layout: id,burst,arrival[,priority].
func LoadCSVFile(path string) (*ProcessSetSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process set: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseCSV(f)
}

// ParseCSV parses id,burst,arrival[,priority] rows. A first row whose burst column is
// not an integer is treated as a header and skipped.
func ParseCSV(r io.Reader) (*ProcessSetSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	spec := &ProcessSetSpec{Version: CurrentVersion, Processes: make([]ProcessSpec, 0, len(rows))}
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("row %d: want 3 or 4 columns (id,burst,arrival[,priority]), got %d", i+1, len(row))
		}
		if i == 0 && !isInteger(row[1]) {
			continue
		}
		p := ProcessSpec{ID: strings.TrimSpace(row[0])}
		if p.Burst, err = parseColumn(row, 1, "burst", i); err != nil {
			return nil, err
		}
		if p.Arrival, err = parseColumn(row, 2, "arrival", i); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if p.Priority, err = parseColumn(row, 3, "priority", i); err != nil {
				return nil, err
			}
		}
		spec.Processes = append(spec.Processes, p)
	}
	return spec, nil
}

func parseColumn(row []string, col int, name string, rowIdx int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(row[col]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s: %w", rowIdx+1, name, err)
	}
	return v, nil
}

func isInteger(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}
