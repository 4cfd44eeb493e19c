package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"userdir/internal/users/model"
)

// ImportUsers parses an uploaded CSV and runs the rows through the ingestion
// pipeline. A structural parse failure aborts before any row is processed and
// surfaces as a single ErrImport-wrapped error, never as per-row outcomes. A
// header-only file is a successful import with an empty outcome sequence.
func (s *Service) ImportUsers(ctx context.Context, data []byte) ([]model.BatchOutcome, error) {
	batch, err := parseCandidates(data)
	if err != nil {
		return nil, err
	}
	return s.Ingest(ctx, batch)
}

// parseCandidates converts CSV bytes into an ordered candidate batch. Row
// order becomes batch order, so rejection reasons and duplicate-of references
// stay row-addressable. No semantic validation happens here; rows go to the
// pipeline as-is.
func parseCandidates(data []byte) ([]model.CandidateRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrImport)
	}

	header, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	batch := []model.CandidateRecord{}
	for _, row := range records[1:] {
		if isEmptyRow(row) {
			continue
		}
		batch = append(batch, model.CandidateRecord{
			Name:  cell(row, header["name"]),
			Email: cell(row, header["email"]),
			Role:  cell(row, header["role"]),
		})
	}
	return batch, nil
}

// mapHeader locates the name/email/role columns, case-insensitively and in
// any order. name and email are mandatory; role is optional.
func mapHeader(row []string) (map[string]int, error) {
	header := map[string]int{"name": -1, "email": -1, "role": -1}
	for i, col := range row {
		key := strings.ToLower(strings.TrimSpace(col))
		if _, ok := header[key]; ok {
			header[key] = i
		}
	}
	if header["name"] < 0 || header["email"] < 0 {
		return nil, fmt.Errorf("%w: header row must contain name and email columns", ErrImport)
	}
	return header, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
