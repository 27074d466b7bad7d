package app

import (
	"context"

	"github.com/init-pkg/nova/errs"
)

type SchemaRegistry interface {
	Industries() []string
	CatalogueFor(industry string) []CanonicalField
	Field(industry, name string) (CanonicalField, bool)
}

type IndustryClassifier interface {
	Classify(headers []string) Classification
}

type ColumnMapperService interface {
	MapColumns(headers []string, industryHint string) MappingResult
}

// ExternalMappingService never fails: any problem with the remote service
// yields a degenerate result with every header unmapped.
type ExternalMappingService interface {
	MapColumnsViaExternal(ctx context.Context, headers []string, sampleRows []map[string]any, industry string) MappingResult
	Enabled() bool
}

type MappingReconciler interface {
	Reconcile(raw MappingResult, headers []string) MappingResult
}

type MappingService interface {
	MapHeaders(ctx context.Context, headers []string, sampleRows []map[string]any, industry, strategy string) (*MapResponse, errs.Error)
	MapFile(ctx context.Context, filename string, file []byte, industry, strategy string) (*MapResponse, errs.Error)
	Commit(ctx context.Context, uploadID string, headers []string, result MappingResult, overrides []Override) (*MapResponse, errs.Error)
	// Committed returns nil without error for unknown uploads.
	Committed(ctx context.Context, uploadID string) (*CommittedMapping, errs.Error)
}

// MappingCache stores external results by request fingerprint.
type MappingCache interface {
	Get(ctx context.Context, key string) (MappingResult, bool)
	Set(ctx context.Context, key string, result MappingResult)
}

// MappingPublisher hands final results to downstream consumers.
type MappingPublisher interface {
	Publish(ctx context.Context, resp *MapResponse) error
}

// ReviewRepository keeps committed mappings per upload.
// Find returns ErrCommitNotFound for unknown uploads.
type ReviewRepository interface {
	Save(ctx context.Context, m *CommittedMapping) error
	Find(ctx context.Context, uploadID string) (*CommittedMapping, error)
}
