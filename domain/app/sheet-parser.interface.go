package app

import (
	"context"

	"github.com/init-pkg/nova/errs"
)

type ParseSheetResult struct {
	SheetName string     `json:"sheet_name"`
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
}

// Records converts up to limit rows into header-keyed records. A limit <= 0
// converts every row. Cells beyond the header width are dropped.
func (r *ParseSheetResult) Records(limit int) []map[string]any {
	n := len(r.Rows)
	if limit > 0 && limit < n {
		n = limit
	}

	records := make([]map[string]any, 0, n)
	for _, row := range r.Rows[:n] {
		rec := make(map[string]any, len(r.Header))
		for i, h := range r.Header {
			if i < len(row) && row[i] != "" {
				rec[h] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

type SheetParserService interface {
	Parse(ctx context.Context, filename string, file []byte) (*ParseSheetResult, errs.Error)
}
