package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadProcessesCSV reads process definitions with the columns
// arrival,burst[,priority]. A leading header row is skipped.
func LoadProcessesCSV(r io.Reader) ([]ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read processes: %w", err)
	}

	specs := make([]ProcessSpec, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && !isNumber(row[0]) {
			continue
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("row %d: expected arrival,burst[,priority], got %d fields", i+1, len(row))
		}

		values := make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d, field %d: %w", i+1, j+1, err)
			}
			values[j] = v
		}

		spec := ProcessSpec{Arrival: values[0], Burst: values[1]}
		if len(values) == 3 {
			spec.Priority = values[2]
		}
		if err := validateProcess(spec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("no processes found")
	}
	return specs, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
