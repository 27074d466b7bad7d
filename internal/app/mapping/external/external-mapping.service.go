package external_mapping_service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/init-pkg/column-mapper/domain/app"
	mapping_reconciler "github.com/init-pkg/column-mapper/internal/app/mapping/reconcile"
	"github.com/init-pkg/column-mapper/internal/config"
	"golang.org/x/time/rate"
)

const (
	ReasonParsingFailed = "AI parsing failed, manual mapping required"
	ReasonNoMatch       = "no suitable mapping found"
	ReasonDefault       = "AI suggested mapping"
	ReasonUnknownTarget = "suggested name is not a standard pattern"
)

// Completer sends one system/user prompt pair to a chat model and returns the
// text of the first answer.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Options struct {
	Timeout       time.Duration
	MaxSampleRows int
	RatePerSec    float64
	Burst         int
	Scores        config.LabelScores
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Timeout:       cfg.Clients.OpenAI.Timeout,
		MaxSampleRows: cfg.Mapping.MaxSampleRows,
		RatePerSec:    cfg.Clients.OpenAI.RatePerSec,
		Burst:         cfg.Clients.OpenAI.Burst,
		Scores:        cfg.Clients.OpenAI.LabelScores,
	}
}

type ExternalMappingService struct {
	completer Completer
	registry  app.SchemaRegistry
	cache     app.MappingCache
	limiter   *rate.Limiter
	log       *slog.Logger

	ctxTimeout    time.Duration
	maxSampleRows int
	scores        config.LabelScores
}

var _ app.ExternalMappingService = &ExternalMappingService{}

// New builds the adapter. A nil completer leaves it disabled: every call then
// returns the degenerate result. cache may be nil.
func New(completer Completer, registry app.SchemaRegistry, cache app.MappingCache, opts Options, log *slog.Logger) *ExternalMappingService {
	if opts.Timeout <= 0 {
		opts.Timeout = 25 * time.Second
	}
	if opts.MaxSampleRows <= 0 {
		opts.MaxSampleRows = 10
	}
	if opts.Scores == (config.LabelScores{}) {
		opts.Scores = config.LabelScores{High: 0.9, Medium: 0.7, Low: 0.4, Other: 0.3}
	}
	limit := rate.Inf
	if opts.RatePerSec > 0 {
		limit = rate.Limit(opts.RatePerSec)
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if log == nil {
		log = slog.Default()
	}

	return &ExternalMappingService{
		completer:     completer,
		registry:      registry,
		cache:         cache,
		limiter:       rate.NewLimiter(limit, opts.Burst),
		log:           log,
		ctxTimeout:    opts.Timeout,
		maxSampleRows: opts.MaxSampleRows,
		scores:        opts.Scores,
	}
}

func (s *ExternalMappingService) Enabled() bool {
	return s.completer != nil
}

// MapColumnsViaExternal asks the remote model for a mapping of headers onto the
// industry catalogue. It never fails: timeouts, transport errors and unusable
// answers all produce a result with every header unmapped.
func (s *ExternalMappingService) MapColumnsViaExternal(
	ctx context.Context,
	headers []string,
	sampleRows []map[string]any,
	industry string,
) app.MappingResult {
	if len(headers) == 0 {
		return mapping_reconciler.Reconcile(app.MappingResult{IndustryType: industry}, headers)
	}

	fields := s.registry.CatalogueFor(industry)
	if len(fields) == 0 {
		return unmappedResult(headers, industry, ReasonNoMatch)
	}
	if s.completer == nil {
		s.log.Warn("external mapping is disabled", "industry", industry)
		return unmappedResult(headers, industry, ReasonParsingFailed)
	}

	if len(sampleRows) > s.maxSampleRows {
		sampleRows = sampleRows[:s.maxSampleRows]
	}
	in := mappingInput{
		Headers:                      headers,
		SampleRows:                   sampleRows,
		IndustryCatalogueDescription: describeCatalogue(fields),
	}

	key, keyOk := cacheKey(industry, in)
	if keyOk && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.log.Debug("external mapping cache hit", "industry", industry, "key", key)
			return mapping_reconciler.Reconcile(cached, headers)
		}
	}

	items, err := s.callModel(ctx, industry, in)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			s.log.Warn("unusable external mapping response", "industry", industry, "error", decodeErr.Err, "raw", decodeErr.Raw)
		} else {
			s.log.Error("external mapping request failed", "industry", industry, "error", err)
		}
		return unmappedResult(headers, industry, ReasonParsingFailed)
	}

	result := s.buildResult(headers, industry, items)
	if keyOk && s.cache != nil {
		s.cache.Set(ctx, key, result)
	}
	return result
}

// One request per header set, bounded by the rate limiter and the timeout.
func (s *ExternalMappingService) callModel(ctx context.Context, industry string, in mappingInput) ([]suggestion, error) {
	user, err := buildUserPrompt(industry, in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.ctxTimeout)
	defer cancel()

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	raw, err := s.completer.Complete(ctx, systemPrompt, user)
	if err != nil {
		return nil, err
	}

	items, decodeErr := decodeSuggestions(raw)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return items, nil
}

// buildResult turns the suggestions into a result over headers. The first
// suggestion per original name counts. Suggested names are resolved against
// the catalogue; names it does not know leave the header unmapped.
func (s *ExternalMappingService) buildResult(headers []string, industry string, items []suggestion) app.MappingResult {
	byName := make(map[string]suggestion, len(items))
	for _, it := range items {
		if _, ok := byName[it.OriginalName]; !ok {
			byName[it.OriginalName] = it
		}
	}

	raw := app.MappingResult{IndustryType: industry}
	for _, h := range headers {
		it, ok := byName[h]
		if !ok {
			raw.Diagnostics = append(raw.Diagnostics, app.ColumnMapping{OriginalName: h, Reason: ReasonNoMatch})
			continue
		}

		reason := it.Reason
		if reason == "" {
			reason = ReasonDefault
		}
		label := it.label()
		score := s.scoreFor(label)

		if it.SuggestedName == nil {
			raw.Diagnostics = append(raw.Diagnostics, app.ColumnMapping{
				OriginalName:    h,
				Confidence:      score,
				ConfidenceLabel: label,
				Reason:          reason,
			})
			continue
		}

		field, known := s.registry.Field(industry, *it.SuggestedName)
		if !known {
			raw.Diagnostics = append(raw.Diagnostics, app.ColumnMapping{
				OriginalName:    h,
				Confidence:      score,
				ConfidenceLabel: label,
				Reason:          ReasonUnknownTarget,
			})
			continue
		}

		target, category := field.TargetName, field.Category
		raw.Mappings = append(raw.Mappings, app.ColumnMapping{
			OriginalName:    h,
			SuggestedName:   &target,
			Confidence:      score,
			ConfidenceLabel: label,
			Category:        &category,
			Reason:          reason,
		})
	}

	return mapping_reconciler.Reconcile(raw, headers)
}

func (s *ExternalMappingService) scoreFor(label string) float64 {
	switch label {
	case "high":
		return s.scores.High
	case "medium":
		return s.scores.Medium
	case "low":
		return s.scores.Low
	}
	return s.scores.Other
}

func unmappedResult(headers []string, industry, reason string) app.MappingResult {
	raw := app.MappingResult{IndustryType: industry}
	for _, h := range headers {
		raw.Diagnostics = append(raw.Diagnostics, app.ColumnMapping{OriginalName: h, Reason: reason})
	}
	return mapping_reconciler.Reconcile(raw, headers)
}

func cacheKey(industry string, in mappingInput) (string, bool) {
	b, err := json.Marshal(struct {
		Industry   string           `json:"industry"`
		Headers    []string         `json:"headers"`
		SampleRows []map[string]any `json:"sampleRows"`
	}{industry, in.Headers, in.SampleRows})
	if err != nil {
		return "", false
	}
	h := sha256.Sum256(b)
	return "column-mapper:external:" + hex.EncodeToString(h[:]), true
}
