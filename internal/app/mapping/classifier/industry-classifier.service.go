package industry_classifier_service

import (
	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/column-mapper/internal/app/mapping/similarity"
)

// Service picks the industry whose catalogue best explains a header row.
type Service struct {
	registry        app.SchemaRegistry
	defaultIndustry string
}

var _ app.IndustryClassifier = &Service{}

func New(registry app.SchemaRegistry, defaultIndustry string) *Service {
	return &Service{registry, defaultIndustry}
}

// Classify scores every industry by the mean, over all headers, of each
// header's best synonym similarity in that industry. Weak headers count too.
// Ties keep the industry that comes first in registry order. An empty header
// row yields the default industry with zero confidence.
func (s *Service) Classify(headers []string) app.Classification {
	if len(headers) == 0 {
		return app.Classification{Industry: s.defaultIndustry}
	}

	var (
		scores    = make(map[string]float64)
		best      = app.Classification{Industry: s.defaultIndustry, Confidence: -1}
		haveScore = false
	)

	for _, industry := range s.registry.Industries() {
		fields := s.registry.CatalogueFor(industry)

		total := 0.0
		for _, h := range headers {
			total += bestExplanation(h, fields)
		}
		score := total / float64(len(headers))
		scores[industry] = score

		if !haveScore || score > best.Confidence {
			best.Industry = industry
			best.Confidence = score
			haveScore = true
		}
	}

	if !haveScore {
		return app.Classification{Industry: s.defaultIndustry}
	}

	best.Scores = scores
	return best
}

func bestExplanation(header string, fields []app.CanonicalField) float64 {
	best := 0.0
	for _, f := range fields {
		if s := similarity.Max(header, f.Synonyms); s > best {
			best = s
		}
	}
	return best
}
