package mapping_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/init-pkg/column-mapper/domain/app"
	mapping_reconciler "github.com/init-pkg/column-mapper/internal/app/mapping/reconcile"
	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/init-pkg/nova/errs"
)

type Service struct {
	registry   app.SchemaRegistry
	classifier app.IndustryClassifier
	mapper     app.ColumnMapperService
	external   app.ExternalMappingService
	parser     app.SheetParserService
	reviews    app.ReviewRepository
	publisher  app.MappingPublisher
	log        *slog.Logger

	defaultStrategy string
	maxSampleRows   int
}

var _ app.MappingService = &Service{}

func New(
	registry app.SchemaRegistry,
	classifier app.IndustryClassifier,
	mapper app.ColumnMapperService,
	external app.ExternalMappingService,
	parser app.SheetParserService,
	reviews app.ReviewRepository,
	publisher app.MappingPublisher,
	cfg *config.Config,
	log *slog.Logger,
) *Service {
	strategy := cfg.Mapping.DefaultStrategy
	if strategy == "" {
		strategy = app.StrategyLocal
	}
	maxSampleRows := cfg.Mapping.MaxSampleRows
	if maxSampleRows <= 0 {
		maxSampleRows = 10
	}

	return &Service{
		registry:        registry,
		classifier:      classifier,
		mapper:          mapper,
		external:        external,
		parser:          parser,
		reviews:         reviews,
		publisher:       publisher,
		log:             log,
		defaultStrategy: strategy,
		maxSampleRows:   maxSampleRows,
	}
}

// MapHeaders maps a header row with the requested strategy:
//   - local: similarity matching against the industry catalogue;
//   - external: the remote model, falling back to local when it is disabled;
//   - auto: local first, the remote model only when local left headers
//     unmapped. The result with more mapped headers wins, local on ties.
func (this *Service) MapHeaders(
	ctx context.Context,
	headers []string,
	sampleRows []map[string]any,
	industry, strategy string,
) (*app.MapResponse, errs.Error) {
	headers = trimHeaders(headers)
	if len(headers) == 0 {
		return nil, errs.WrapAppError(app.ErrNoHeaders, &errs.ErrorOpts{})
	}
	if len(sampleRows) > this.maxSampleRows {
		sampleRows = sampleRows[:this.maxSampleRows]
	}
	if strategy == "" {
		strategy = this.defaultStrategy
	}

	result, used := this.resolve(ctx, headers, sampleRows, strings.TrimSpace(industry), strategy)
	result = mapping_reconciler.Reconcile(result, headers)

	resp := &app.MapResponse{
		UploadID:      uuid.NewString(),
		Strategy:      used,
		Result:        result,
		MissingFields: mapping_reconciler.MissingFields(this.registry, result),
	}

	this.log.Info("headers mapped",
		"uploadId", resp.UploadID,
		"strategy", used,
		"industry", result.IndustryType,
		"mapped", len(result.Mappings),
		"unmapped", len(result.UnmappedColumns),
		"confidence", result.Confidence)

	this.publish(ctx, resp)
	return resp, nil
}

func (this *Service) resolve(
	ctx context.Context,
	headers []string,
	sampleRows []map[string]any,
	industry, strategy string,
) (app.MappingResult, string) {
	switch strategy {
	case app.StrategyExternal:
		if !this.external.Enabled() {
			this.log.Warn("external mapping requested but disabled, using local")
			return this.mapper.MapColumns(headers, industry), app.StrategyLocal
		}
		return this.external.MapColumnsViaExternal(ctx, headers, sampleRows, this.industryFor(headers, industry)), app.StrategyExternal

	case app.StrategyAuto:
		local := this.mapper.MapColumns(headers, industry)
		if !this.external.Enabled() || (local.Confidence > 0 && len(local.UnmappedColumns) == 0) {
			return local, app.StrategyLocal
		}
		remote := this.external.MapColumnsViaExternal(ctx, headers, sampleRows, local.IndustryType)
		if len(remote.Mappings) > len(local.Mappings) {
			return remote, app.StrategyExternal
		}
		return local, app.StrategyLocal
	}

	return this.mapper.MapColumns(headers, industry), app.StrategyLocal
}

func (this *Service) industryFor(headers []string, hint string) string {
	if hint != "" {
		return hint
	}
	return this.classifier.Classify(headers).Industry
}

// MapFile parses the uploaded sheet and maps its header row, using the first
// data rows as samples.
func (this *Service) MapFile(ctx context.Context, filename string, file []byte, industry, strategy string) (*app.MapResponse, errs.Error) {
	sheet, err := this.parser.Parse(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	resp, err := this.MapHeaders(ctx, sheet.Header, sheet.Records(this.maxSampleRows), industry, strategy)
	if err != nil {
		return nil, err
	}
	resp.Headers = sheet.Header
	return resp, nil
}

// Commit applies review overrides to a result and stores it for the upload.
func (this *Service) Commit(
	ctx context.Context,
	uploadID string,
	headers []string,
	result app.MappingResult,
	overrides []app.Override,
) (*app.MapResponse, errs.Error) {
	headers = trimHeaders(headers)
	if len(headers) == 0 {
		return nil, errs.WrapAppError(app.ErrNoHeaders, &errs.ErrorOpts{})
	}

	reviewed := mapping_reconciler.ApplyOverrides(this.registry, result, headers, overrides)

	if e := this.reviews.Save(ctx, &app.CommittedMapping{UploadID: uploadID, Result: reviewed}); e != nil {
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{})
	}

	resp := &app.MapResponse{
		UploadID:      uploadID,
		Strategy:      app.StrategyReviewed,
		Headers:       headers,
		Result:        reviewed,
		MissingFields: mapping_reconciler.MissingFields(this.registry, reviewed),
	}

	this.log.Info("mapping committed",
		"uploadId", uploadID,
		"overrides", len(overrides),
		"mapped", len(reviewed.Mappings))

	this.publish(ctx, resp)
	return resp, nil
}

func (this *Service) Committed(ctx context.Context, uploadID string) (*app.CommittedMapping, errs.Error) {
	m, e := this.reviews.Find(ctx, uploadID)
	if errors.Is(e, app.ErrCommitNotFound) {
		return nil, nil
	}
	if e != nil {
		return nil, errs.WrapAppError(e, &errs.ErrorOpts{})
	}
	return m, nil
}

func (this *Service) publish(ctx context.Context, resp *app.MapResponse) {
	if err := this.publisher.Publish(ctx, resp); err != nil {
		this.log.Error("failed to publish mapping", "uploadId", resp.UploadID, "error", err)
	}
}

func trimHeaders(headers []string) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}
