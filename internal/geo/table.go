// Package geo provides the country reference table used to standardize
// registry-reported country names.
package geo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reference table errors.
var (
	ErrMissingNameColumn = errors.New("reference file has no name column")
	ErrEmptyTable        = errors.New("reference file contains no countries")
)

// Record is one canonical country entry from the Natural Earth reference.
type Record struct {
	Name string // canonical country name
	ISO3 string // ADM0_A3 code
}

// Table maps lowercased, trimmed country names to canonical records.
// It is built once per run and read-only afterwards, so it may be
// shared across concurrent lookups without locking.
type Table struct {
	entries map[string]Record
}

// Load reads the Natural Earth reference CSV. The file must carry a
// header with "name", "country_name", and "country_iso3" columns.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read reference header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	nameIdx, ok := cols["name"]
	if !ok {
		return nil, ErrMissingNameColumn
	}

	canonicalIdx, hasCanonical := cols["country_name"]
	isoIdx, hasISO := cols["country_iso3"]

	entries := map[string]Record{}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read reference row: %w", err)
		}

		if nameIdx >= len(row) {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(row[nameIdx]))
		if key == "" {
			continue
		}

		rec := Record{}
		if hasCanonical && canonicalIdx < len(row) {
			rec.Name = strings.TrimSpace(row[canonicalIdx])
		}

		if hasISO && isoIdx < len(row) {
			rec.ISO3 = strings.TrimSpace(row[isoIdx])
		}

		if rec.Name == "" {
			rec.Name = strings.TrimSpace(row[nameIdx])
		}

		entries[key] = rec
	}

	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	return &Table{entries: entries}, nil
}

// Lookup returns the canonical record for a country name. The input is
// trimmed and lowercased before matching.
func (t *Table) Lookup(name string) (Record, bool) {
	rec, ok := t.entries[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// Len returns the number of reference entries.
func (t *Table) Len() int {
	return len(t.entries)
}
