package mapping_reconciler

import (
	"slices"
	"strings"

	"github.com/init-pkg/column-mapper/domain/app"
)

const (
	ReasonReviewed   = "manually reviewed"
	ReasonUnassigned = "manually unmapped"
	LabelManual      = "manual"
)

type fieldLookup interface {
	Field(industry, name string) (app.CanonicalField, bool)
}

// ApplyOverrides applies review decisions to result and reconciles it. An
// override with a suggestion maps the header with full confidence, resolving
// the name against the industry catalogue when possible; an override without
// one unmaps the header. Overrides for headers outside headers are ignored.
func ApplyOverrides(fields fieldLookup, result app.MappingResult, headers []string, overrides []app.Override) app.MappingResult {
	known := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		known[h] = struct{}{}
	}

	decided := make(map[string]*app.ColumnMapping, len(overrides))
	var order []string
	for _, o := range overrides {
		if _, ok := known[o.OriginalName]; !ok {
			continue
		}
		if _, ok := decided[o.OriginalName]; !ok {
			order = append(order, o.OriginalName)
		}
		decided[o.OriginalName] = reviewedMapping(fields, result.IndustryType, o)
	}

	var (
		mappings    = make([]app.ColumnMapping, 0, len(result.Mappings)+len(order))
		applied     = make(map[string]struct{}, len(order))
		diagnostics = slices.Clone(result.Diagnostics)
	)
	for _, m := range result.Mappings {
		d, ok := decided[m.OriginalName]
		if !ok {
			mappings = append(mappings, m)
			continue
		}
		applied[m.OriginalName] = struct{}{}
		if d.SuggestedName != nil {
			mappings = append(mappings, *d)
		}
	}

	for _, name := range order {
		d := decided[name]
		if d.SuggestedName == nil {
			diagnostics = slices.DeleteFunc(diagnostics, func(m app.ColumnMapping) bool {
				return m.OriginalName == name
			})
			diagnostics = append(diagnostics, *d)
			continue
		}
		if _, ok := applied[name]; !ok {
			mappings = append(mappings, *d)
		}
	}

	unmapped := slices.DeleteFunc(slices.Clone(result.UnmappedColumns), func(h string) bool {
		d, ok := decided[h]
		return ok && d.SuggestedName != nil
	})

	return Reconcile(app.MappingResult{
		Mappings:        mappings,
		UnmappedColumns: unmapped,
		IndustryType:    result.IndustryType,
		Diagnostics:     diagnostics,
	}, headers)
}

func reviewedMapping(fields fieldLookup, industry string, o app.Override) *app.ColumnMapping {
	m := &app.ColumnMapping{OriginalName: o.OriginalName, ConfidenceLabel: LabelManual}
	if o.SuggestedName == nil || strings.TrimSpace(*o.SuggestedName) == "" {
		m.Reason = ReasonUnassigned
		return m
	}

	target := strings.TrimSpace(*o.SuggestedName)
	m.SuggestedName = &target
	m.Confidence = 1.0
	m.Reason = ReasonReviewed
	if f, ok := fields.Field(industry, target); ok {
		category := f.Category
		m.SuggestedName = &f.TargetName
		m.Category = &category
	}
	return m
}

// MissingFields lists the industry's canonical targets that no mapping in
// result produces, in catalogue order.
func MissingFields(registry app.SchemaRegistry, result app.MappingResult) []string {
	produced := make(map[string]struct{}, len(result.Mappings))
	for _, m := range result.Mappings {
		produced[m.Target()] = struct{}{}
	}

	missing := make([]string, 0)
	for _, f := range registry.CatalogueFor(result.IndustryType) {
		if _, ok := produced[f.TargetName]; !ok {
			missing = append(missing, f.TargetName)
		}
	}
	return missing
}

// ApplyToRecords renames record keys to the mapped target names. Unmapped keys
// are copied as they are unless dropUnmapped is set. When two headers map to
// the same target the one listed first in result.Mappings wins.
func ApplyToRecords(records []map[string]any, result app.MappingResult, dropUnmapped bool) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		row := make(map[string]any, len(rec))
		renamed := make(map[string]struct{}, len(result.Mappings))

		for _, m := range result.Mappings {
			v, ok := rec[m.OriginalName]
			if !ok || m.SuggestedName == nil {
				continue
			}
			renamed[m.OriginalName] = struct{}{}
			if _, taken := row[*m.SuggestedName]; !taken {
				row[*m.SuggestedName] = v
			}
		}

		if !dropUnmapped {
			keys := make([]string, 0, len(rec))
			for k := range rec {
				if _, ok := renamed[k]; !ok {
					keys = append(keys, k)
				}
			}
			slices.Sort(keys)
			for _, k := range keys {
				if _, taken := row[k]; !taken {
					row[k] = rec[k]
				}
			}
		}

		out = append(out, row)
	}
	return out
}
