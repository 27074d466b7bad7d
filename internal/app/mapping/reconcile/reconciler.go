package mapping_reconciler

import (
	"math"
	"slices"
	"strings"

	"github.com/init-pkg/column-mapper/domain/app"
)

type Reconciler struct{}

var _ app.MappingReconciler = &Reconciler{}

func New() *Reconciler {
	return &Reconciler{}
}

func (*Reconciler) Reconcile(raw app.MappingResult, headers []string) app.MappingResult {
	return Reconcile(raw, headers)
}

// Reconcile restores the partition invariant of raw against the observed
// headers:
//   - mappings for unknown headers or with an empty suggestion are dropped,
//     the latter turning into unmapped headers;
//   - every header that is not mapped ends up in UnmappedColumns exactly once,
//     keeping raw's order first and then header order;
//   - diagnostics survive only for unmapped headers, one per header;
//   - the overall confidence is recomputed from the kept mappings.
//
// Reconciling a reconciled result against the same headers returns it unchanged.
func Reconcile(raw app.MappingResult, headers []string) app.MappingResult {
	known := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		known[h] = struct{}{}
	}

	var (
		mappings = make([]app.ColumnMapping, 0, len(raw.Mappings))
		mapped   = make(map[string]struct{}, len(raw.Mappings))
		demoted  []app.ColumnMapping
	)
	for _, m := range raw.Mappings {
		if _, ok := known[m.OriginalName]; !ok {
			continue
		}
		if m.SuggestedName == nil || strings.TrimSpace(*m.SuggestedName) == "" {
			m.SuggestedName = nil
			m.Category = nil
			demoted = append(demoted, m)
			continue
		}
		m = cloneMapping(m)
		m.Confidence = clamp(m.Confidence)
		mappings = append(mappings, m)
		mapped[m.OriginalName] = struct{}{}
	}

	var (
		unmapped   = make([]string, 0, len(headers)-len(mapped))
		isUnmapped = make(map[string]struct{})
	)
	add := func(h string) {
		if _, ok := known[h]; !ok {
			return
		}
		if _, ok := mapped[h]; ok {
			return
		}
		if _, ok := isUnmapped[h]; ok {
			return
		}
		isUnmapped[h] = struct{}{}
		unmapped = append(unmapped, h)
	}
	for _, h := range raw.UnmappedColumns {
		add(h)
	}
	for _, d := range demoted {
		add(d.OriginalName)
	}
	for _, h := range headers {
		add(h)
	}

	var (
		diagnostics []app.ColumnMapping
		diagnosed   = make(map[string]struct{})
	)
	for _, d := range slices.Concat(raw.Diagnostics, demoted) {
		if _, ok := isUnmapped[d.OriginalName]; !ok {
			continue
		}
		if _, ok := diagnosed[d.OriginalName]; ok {
			continue
		}
		diagnosed[d.OriginalName] = struct{}{}
		d.SuggestedName = nil
		d.Category = nil
		d.Confidence = clamp(d.Confidence)
		diagnostics = append(diagnostics, d)
	}

	return app.MappingResult{
		Mappings:        mappings,
		UnmappedColumns: unmapped,
		IndustryType:    raw.IndustryType,
		Confidence:      MeanConfidence(mappings),
		Diagnostics:     diagnostics,
	}
}

// MeanConfidence is the arithmetic mean of the mapping confidences, 0 for none.
func MeanConfidence(mappings []app.ColumnMapping) float64 {
	if len(mappings) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range mappings {
		sum += m.Confidence
	}
	return sum / float64(len(mappings))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func cloneMapping(m app.ColumnMapping) app.ColumnMapping {
	if m.SuggestedName != nil {
		s := *m.SuggestedName
		m.SuggestedName = &s
	}
	if m.Category != nil {
		c := *m.Category
		m.Category = &c
	}
	return m
}
