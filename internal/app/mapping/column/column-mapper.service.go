package column_mapper_service

import (
	"log/slog"

	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/column-mapper/internal/app/mapping/similarity"
)

const DefaultThreshold = 0.6

type ColumnMapperService struct {
	registry   app.SchemaRegistry
	classifier app.IndustryClassifier
	threshold  float64
	log        *slog.Logger
}

var _ app.ColumnMapperService = &ColumnMapperService{}

func New(registry app.SchemaRegistry, classifier app.IndustryClassifier, threshold float64, log *slog.Logger) *ColumnMapperService {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	if log == nil {
		log = slog.Default()
	}
	return &ColumnMapperService{registry, classifier, threshold, log}
}

func (s *ColumnMapperService) Threshold() float64 {
	return s.threshold
}

// MapColumns maps every header to the canonical field of the target industry
// with the highest synonym similarity, accepting it only when the similarity
// is strictly above the threshold. industryHint is used verbatim when set,
// otherwise the industry is classified from the headers.
func (s *ColumnMapperService) MapColumns(headers []string, industryHint string) app.MappingResult {
	industry := industryHint
	if industry == "" {
		c := s.classifier.Classify(headers)
		industry = c.Industry
		s.log.Debug("industry detected", "industry", c.Industry, "confidence", c.Confidence)
	}

	var (
		fields     = s.registry.CatalogueFor(industry)
		mappings   = make([]app.ColumnMapping, 0, len(headers))
		unmapped   = make([]string, 0)
		isUnmapped = make(map[string]struct{})
		sum        float64
	)

	for _, h := range headers {
		field, score, ok := s.BestMatch(h, fields)
		if !ok {
			if _, dup := isUnmapped[h]; !dup {
				isUnmapped[h] = struct{}{}
				unmapped = append(unmapped, h)
			}
			continue
		}

		target, category := field.TargetName, field.Category
		mappings = append(mappings, app.ColumnMapping{
			OriginalName:  h,
			SuggestedName: &target,
			Confidence:    score,
			Category:      &category,
		})
		sum += score
	}

	confidence := 0.0
	if len(mappings) > 0 {
		confidence = sum / float64(len(mappings))
	}

	return app.MappingResult{
		Mappings:        mappings,
		UnmappedColumns: unmapped,
		IndustryType:    industry,
		Confidence:      confidence,
	}
}

// BestMatch returns the field whose synonyms are most similar to header.
// ok is false when the best similarity does not exceed the threshold. On
// equal similarity the field listed first in the catalogue wins.
func (s *ColumnMapperService) BestMatch(header string, fields []app.CanonicalField) (app.CanonicalField, float64, bool) {
	var (
		best      app.CanonicalField
		bestScore float64
	)
	for _, f := range fields {
		if score := similarity.Max(header, f.Synonyms); score > bestScore {
			best, bestScore = f, score
		}
	}

	if bestScore > s.threshold {
		return best, bestScore, true
	}
	return app.CanonicalField{}, bestScore, false
}
