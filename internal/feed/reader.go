package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"trialsync/internal/models"
)

// ErrEmptyFeed indicates an export with no header row.
var ErrEmptyFeed = errors.New("feed contains no header row")

// ParseRows decodes the ICTRP CSV export into rows keyed by the
// header's column names. Short records leave their trailing columns
// absent rather than failing the row.
func ParseRows(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFeed
		}

		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}

	var rows []models.Row

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read feed row %d: %w", len(rows)+2, err)
		}

		row := make(models.Row, len(header))

		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// FilterRegistry drops rows originating from the excluded registry.
// Those registrations arrive through a separate feed and would
// otherwise duplicate documents downstream.
func FilterRegistry(rows []models.Row, excluded string) []models.Row {
	if excluded == "" {
		return rows
	}

	filtered := make([]models.Row, 0, len(rows))

	for _, row := range rows {
		if register, ok := row.Get(models.ColSourceRegister); ok && register == excluded {
			continue
		}

		filtered = append(filtered, row)
	}

	return filtered
}
