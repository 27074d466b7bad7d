package mapping_service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/init-pkg/column-mapper/domain/app"
	industry_classifier_service "github.com/init-pkg/column-mapper/internal/app/mapping/classifier"
	column_mapper_service "github.com/init-pkg/column-mapper/internal/app/mapping/column"
	schema_registry "github.com/init-pkg/column-mapper/internal/app/mapping/registry"
	review_repository "github.com/init-pkg/column-mapper/internal/app/mapping/review"
	sheet_parser_service "github.com/init-pkg/column-mapper/internal/app/sheet-parser/service"
	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExternal struct {
	enabled  bool
	result   func(headers []string, industry string) app.MappingResult
	calls    int
	industry string
	samples  int
}

func (f *fakeExternal) Enabled() bool { return f.enabled }

func (f *fakeExternal) MapColumnsViaExternal(_ context.Context, headers []string, rows []map[string]any, industry string) app.MappingResult {
	f.calls++
	f.industry = industry
	f.samples = len(rows)
	return f.result(headers, industry)
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []*app.MapResponse
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, resp *app.MapResponse) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, resp)
	return p.err
}

type failingRepository struct{}

func (failingRepository) Save(context.Context, *app.CommittedMapping) error {
	return errors.New("database is down")
}

func (failingRepository) Find(context.Context, string) (*app.CommittedMapping, error) {
	return nil, errors.New("database is down")
}

type fixture struct {
	service   *Service
	external  *fakeExternal
	publisher *recordingPublisher
}

func newFixture(t *testing.T, reviews app.ReviewRepository) *fixture {
	t.Helper()
	var (
		log        = slog.New(slog.NewTextHandler(io.Discard, nil))
		registry   = schema_registry.Default()
		classifier = industry_classifier_service.New(registry, app.IndustryRetail)
		mapper     = column_mapper_service.New(registry, classifier, column_mapper_service.DefaultThreshold, log)
		external   = &fakeExternal{}
		publisher  = &recordingPublisher{}
	)
	if reviews == nil {
		reviews = review_repository.NewMemory()
	}
	s := New(registry, classifier, mapper, external, sheet_parser_service.New(log), reviews, publisher, config.Default(), log)
	return &fixture{service: s, external: external, publisher: publisher}
}

func mapAll(target string) func([]string, string) app.MappingResult {
	return func(headers []string, industry string) app.MappingResult {
		r := app.MappingResult{IndustryType: industry, UnmappedColumns: []string{}}
		for _, h := range headers {
			name := target
			r.Mappings = append(r.Mappings, app.ColumnMapping{OriginalName: h, SuggestedName: &name, Confidence: 0.7})
		}
		return r
	}
}

func TestMapHeaders_Local(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.service.MapHeaders(context.Background(), []string{" ord_id ", "qty", "foo", ""}, nil, app.IndustryRetail, "")

	require.Nil(t, err)
	assert.Equal(t, app.StrategyLocal, resp.Strategy)
	assert.NoError(t, uuid.Validate(resp.UploadID))
	assert.Equal(t, []string{"ord_id", "qty"}, resp.Result.MappedNames())
	assert.Equal(t, []string{"foo"}, resp.Result.UnmappedColumns)
	assert.Contains(t, resp.MissingFields, "ProductName")
	assert.NotContains(t, resp.MissingFields, "Quantity")
	assert.Zero(t, f.external.calls)

	require.Len(t, f.publisher.sent, 1)
	assert.Same(t, resp, f.publisher.sent[0])
}

func TestMapHeaders_NoHeaders(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.service.MapHeaders(context.Background(), []string{" ", ""}, nil, "", "")

	assert.NotNil(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, f.publisher.sent)
}

func TestMapHeaders_External(t *testing.T) {
	f := newFixture(t, nil)
	f.external.enabled = true
	f.external.result = mapAll("Department")

	rows := make([]map[string]any, 15)
	for i := range rows {
		rows[i] = map[string]any{"a": i}
	}

	resp, err := f.service.MapHeaders(context.Background(), []string{"Employee ID", "Department"}, rows, "", app.StrategyExternal)

	require.Nil(t, err)
	assert.Equal(t, app.StrategyExternal, resp.Strategy)
	assert.Equal(t, 1, f.external.calls)
	assert.Equal(t, app.IndustryHR, f.external.industry, "industry is classified before the remote call")
	assert.Equal(t, 10, f.external.samples)
	assert.Len(t, resp.Result.Mappings, 2)
}

func TestMapHeaders_ExternalDisabled(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.service.MapHeaders(context.Background(), []string{"qty"}, nil, app.IndustryRetail, app.StrategyExternal)

	require.Nil(t, err)
	assert.Equal(t, app.StrategyLocal, resp.Strategy)
	assert.Zero(t, f.external.calls)
	assert.Equal(t, []string{"qty"}, resp.Result.MappedNames())
}

func TestMapHeaders_Auto(t *testing.T) {
	t.Run("local covers everything", func(t *testing.T) {
		f := newFixture(t, nil)
		f.external.enabled = true
		f.external.result = mapAll("Quantity")

		resp, err := f.service.MapHeaders(context.Background(), []string{"qty", "order_id"}, nil, app.IndustryRetail, app.StrategyAuto)

		require.Nil(t, err)
		assert.Equal(t, app.StrategyLocal, resp.Strategy)
		assert.Zero(t, f.external.calls)
	})

	t.Run("external maps more", func(t *testing.T) {
		f := newFixture(t, nil)
		f.external.enabled = true
		f.external.result = mapAll("Quantity")

		resp, err := f.service.MapHeaders(context.Background(), []string{"qty", "foo"}, nil, app.IndustryRetail, app.StrategyAuto)

		require.Nil(t, err)
		assert.Equal(t, app.StrategyExternal, resp.Strategy)
		assert.Equal(t, 1, f.external.calls)
		assert.Equal(t, app.IndustryRetail, f.external.industry)
		assert.Len(t, resp.Result.Mappings, 2)
	})

	t.Run("tie keeps local", func(t *testing.T) {
		f := newFixture(t, nil)
		f.external.enabled = true
		f.external.result = func(headers []string, industry string) app.MappingResult {
			return app.MappingResult{IndustryType: industry, UnmappedColumns: headers}
		}

		resp, err := f.service.MapHeaders(context.Background(), []string{"foo", "bar"}, nil, app.IndustryRetail, app.StrategyAuto)

		require.Nil(t, err)
		assert.Equal(t, app.StrategyLocal, resp.Strategy)
		assert.Equal(t, 1, f.external.calls)
		assert.Equal(t, []string{"foo", "bar"}, resp.Result.UnmappedColumns)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, nil)

		resp, err := f.service.MapHeaders(context.Background(), []string{"foo"}, nil, app.IndustryRetail, app.StrategyAuto)

		require.Nil(t, err)
		assert.Equal(t, app.StrategyLocal, resp.Strategy)
		assert.Zero(t, f.external.calls)
	})
}

func TestMapHeaders_ExternalResultIsReconciled(t *testing.T) {
	f := newFixture(t, nil)
	f.external.enabled = true
	f.external.result = func(headers []string, industry string) app.MappingResult {
		name := "Quantity"
		return app.MappingResult{
			IndustryType: industry,
			Mappings: []app.ColumnMapping{
				{OriginalName: "qty", SuggestedName: &name, Confidence: 0.9},
				{OriginalName: "ghost", SuggestedName: &name, Confidence: 0.9},
			},
		}
	}

	resp, err := f.service.MapHeaders(context.Background(), []string{"qty", "foo"}, nil, app.IndustryRetail, app.StrategyExternal)

	require.Nil(t, err)
	assert.Equal(t, []string{"qty"}, resp.Result.MappedNames())
	assert.Equal(t, []string{"foo"}, resp.Result.UnmappedColumns)
	assert.InDelta(t, 0.9, resp.Result.Confidence, 1e-9)
}

func TestMapHeaders_PublishFailureIsNotAnError(t *testing.T) {
	f := newFixture(t, nil)
	f.publisher.err = errors.New("broker unavailable")

	resp, err := f.service.MapHeaders(context.Background(), []string{"qty"}, nil, app.IndustryRetail, app.StrategyLocal)

	require.Nil(t, err)
	assert.NotNil(t, resp)
}

func TestMapFile(t *testing.T) {
	f := newFixture(t, nil)
	file := []byte("Employee ID,Department,Hire Date,Monthly Salary,Shoe Size\n1,Sales,2024-01-02,5000,42\n2,HR,2023-05-06,4200,39\n")

	resp, err := f.service.MapFile(context.Background(), "staff.csv", file, "", "")

	require.Nil(t, err)
	assert.Equal(t, []string{"Employee ID", "Department", "Hire Date", "Monthly Salary", "Shoe Size"}, resp.Headers)
	assert.Equal(t, app.IndustryHR, resp.Result.IndustryType)
	assert.Len(t, resp.Result.Mappings, 4)
	assert.Equal(t, []string{"Shoe Size"}, resp.Result.UnmappedColumns)
}

func TestMapFile_Errors(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.service.MapFile(context.Background(), "empty.csv", []byte(" , \n1,2\n"), "", "")
	assert.NotNil(t, err)
	assert.Nil(t, resp)

	_, err = f.service.MapFile(context.Background(), "notes.txt", []byte("a"), "", "")
	assert.NotNil(t, err)
}

func TestCommitAndCommitted(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	headers := []string{"qty", "foo", "prod name"}

	mapped, err := f.service.MapHeaders(ctx, headers, nil, app.IndustryRetail, app.StrategyLocal)
	require.Nil(t, err)

	price := "unit price"
	resp, err := f.service.Commit(ctx, mapped.UploadID, headers, mapped.Result, []app.Override{
		{OriginalName: "foo", SuggestedName: &price},
		{OriginalName: "prod name", SuggestedName: nil},
	})

	require.Nil(t, err)
	assert.Equal(t, mapped.UploadID, resp.UploadID)
	assert.Equal(t, app.StrategyReviewed, resp.Strategy)
	assert.Equal(t, []string{"qty", "foo"}, resp.Result.MappedNames())
	assert.Equal(t, []string{"prod name"}, resp.Result.UnmappedColumns)

	m, ok := resp.Result.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, "UnitPrice", m.Target())
	assert.Equal(t, 1.0, m.Confidence)
	assert.Contains(t, resp.MissingFields, "ProductName")
	assert.Len(t, f.publisher.sent, 2)

	stored, err := f.service.Committed(ctx, mapped.UploadID)
	require.Nil(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, resp.Result, stored.Result)

	missing, err := f.service.Committed(ctx, uuid.NewString())
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestCommit_StoreFailure(t *testing.T) {
	f := newFixture(t, failingRepository{})

	resp, err := f.service.Commit(context.Background(), uuid.NewString(), []string{"qty"}, app.MappingResult{IndustryType: app.IndustryRetail}, nil)
	assert.NotNil(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, f.publisher.sent)

	stored, err := f.service.Committed(context.Background(), "x")
	assert.NotNil(t, err)
	assert.Nil(t, stored)
}
