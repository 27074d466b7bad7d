package external_mapping_service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/init-pkg/column-mapper/domain/app"
	schema_registry "github.com/init-pkg/column-mapper/internal/app/mapping/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	mu     sync.Mutex
	answer string
	err    error
	block  bool
	calls  int
	system string
	user   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.system, f.user = system, user
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.answer, f.err
}

type memCache struct {
	m map[string]app.MappingResult
}

func (c *memCache) Get(_ context.Context, key string) (app.MappingResult, bool) {
	r, ok := c.m[key]
	return r, ok
}

func (c *memCache) Set(_ context.Context, key string, r app.MappingResult) {
	c.m[key] = r
}

func newService(c Completer, cache app.MappingCache, opts Options) *ExternalMappingService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(c, schema_registry.Default(), cache, opts, log)
}

func assertPartition(t *testing.T, headers []string, r app.MappingResult) {
	t.Helper()
	seen := make(map[string]int)
	for _, n := range r.MappedNames() {
		seen[n]++
	}
	for _, n := range r.UnmappedColumns {
		_, mapped := seen[n]
		assert.False(t, mapped, "%q is both mapped and unmapped", n)
		seen[n]++
	}
	for _, h := range headers {
		assert.Contains(t, seen, h)
	}
	assert.Len(t, seen, len(headers))
}

func assertDegenerate(t *testing.T, headers []string, r app.MappingResult) {
	t.Helper()
	assert.NotNil(t, r.Mappings)
	assert.Empty(t, r.Mappings)
	assert.Equal(t, headers, r.UnmappedColumns)
	assert.Equal(t, 0.0, r.Confidence)
	require.Len(t, r.Diagnostics, len(headers))
	for _, d := range r.Diagnostics {
		assert.Equal(t, ReasonParsingFailed, d.Reason)
		assert.Nil(t, d.SuggestedName)
	}
}

func TestMapColumnsViaExternal_FencedAnswer(t *testing.T) {
	headers := []string{"ord_id", "prod name", "qty", "weird"}
	c := &fakeCompleter{answer: "```json\n" + `[
		{"originalName": "ord_id", "suggestedName": "order_id", "confidence": "high", "reason": "identifier"},
		{"originalName": "prod name", "suggestedName": "ProductName", "confidence": "medium"},
		{"originalName": "qty", "suggestedName": "Quantity", "confidence": "LOW", "reason": "count"},
		{"originalName": "weird", "suggestedName": null, "confidence": "low", "reason": "nothing fits"}
	]` + "\n```"}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 3)
	assert.Equal(t, app.IndustryRetail, r.IndustryType)

	assert.Equal(t, "order_id", r.Mappings[0].Target())
	assert.Equal(t, 0.9, r.Mappings[0].Confidence)
	assert.Equal(t, "high", r.Mappings[0].ConfidenceLabel)
	assert.Equal(t, "identifier", r.Mappings[0].Reason)
	require.NotNil(t, r.Mappings[0].Category)
	assert.Equal(t, "identifier", *r.Mappings[0].Category)

	assert.Equal(t, "ProductName", r.Mappings[1].Target())
	assert.Equal(t, 0.7, r.Mappings[1].Confidence)
	assert.Equal(t, ReasonDefault, r.Mappings[1].Reason)

	assert.Equal(t, "Quantity", r.Mappings[2].Target())
	assert.Equal(t, 0.4, r.Mappings[2].Confidence)

	assert.Equal(t, []string{"weird"}, r.UnmappedColumns)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, "nothing fits", r.Diagnostics[0].Reason)
	assert.InDelta(t, 2.0/3.0, r.Confidence, 1e-9)
	assertPartition(t, headers, r)

	assert.Equal(t, 1, c.calls)
	assert.Contains(t, c.user, "- **order_id** (identifier): Matches → order_id")
	assert.Contains(t, c.user, "RETAIL")
	assert.NotEmpty(t, c.system)
}

func TestMapColumnsViaExternal_PlainFence(t *testing.T) {
	c := &fakeCompleter{answer: "```\n[{\"originalName\": \"qty\", \"suggestedName\": \"Quantity\", \"confidence\": \"high\"}]\n```"}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), []string{"qty"}, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 1)
	assert.Equal(t, "Quantity", r.Mappings[0].Target())
	assert.Empty(t, r.UnmappedColumns)
}

func TestMapColumnsViaExternal_MissingHeaders(t *testing.T) {
	headers := []string{"ord_id", "qty", "foo"}
	c := &fakeCompleter{answer: `[{"originalName": "ord_id", "suggestedName": "order_id", "confidence": "high"}]`}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 1)
	assert.Equal(t, []string{"qty", "foo"}, r.UnmappedColumns)
	require.Len(t, r.Diagnostics, 2)
	for _, d := range r.Diagnostics {
		assert.Equal(t, ReasonNoMatch, d.Reason)
	}
	assertPartition(t, headers, r)
}

func TestMapColumnsViaExternal_UnusableAnswers(t *testing.T) {
	headers := []string{"ord_id", "qty", "foo"}

	for name, answer := range map[string]string{
		"not json":    "Sure! Here is the mapping you asked for.",
		"object":      `{"mappings": []}`,
		"null":        "null",
		"empty":       "   ",
		"broken json": `[{"originalName": "qty"`,
	} {
		t.Run(name, func(t *testing.T) {
			s := newService(&fakeCompleter{answer: answer}, nil, Options{})

			r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

			assertDegenerate(t, headers, r)
		})
	}
}

func TestMapColumnsViaExternal_CompleterError(t *testing.T) {
	headers := []string{"ord_id", "qty"}
	s := newService(&fakeCompleter{err: errors.New("connection refused")}, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	assertDegenerate(t, headers, r)
}

func TestMapColumnsViaExternal_Timeout(t *testing.T) {
	headers := []string{"ord_id", "qty"}
	c := &fakeCompleter{block: true}
	s := newService(c, nil, Options{Timeout: 20 * time.Millisecond})

	start := time.Now()
	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	assert.Less(t, time.Since(start), 5*time.Second)
	assertDegenerate(t, headers, r)
	assert.Equal(t, 1, c.calls)
}

func TestMapColumnsViaExternal_LabelScores(t *testing.T) {
	headers := []string{"a", "b", "c", "d", "e"}
	c := &fakeCompleter{answer: `[
		{"originalName": "a", "suggestedName": "Quantity", "confidence": "high"},
		{"originalName": "b", "suggestedName": "UnitPrice", "confidence": "medium"},
		{"originalName": "c", "suggestedName": "TotalSales", "confidence": "low"},
		{"originalName": "d", "suggestedName": "Category", "confidence": "certain"},
		{"originalName": "e", "suggestedName": "Gender"}
	]`}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 5)
	want := []float64{0.9, 0.7, 0.4, 0.3, 0.3}
	for i, m := range r.Mappings {
		assert.Equal(t, want[i], m.Confidence, m.OriginalName)
	}
	assert.InDelta(t, 2.6/5, r.Confidence, 1e-9)
}

func TestMapColumnsViaExternal_ConfiguredScores(t *testing.T) {
	c := &fakeCompleter{answer: `[{"originalName": "qty", "suggestedName": "Quantity", "confidence": "high"}]`}
	opts := Options{}
	opts.Scores.High, opts.Scores.Medium, opts.Scores.Low, opts.Scores.Other = 0.95, 0.75, 0.5, 0.1
	s := newService(c, nil, opts)

	r := s.MapColumnsViaExternal(context.Background(), []string{"qty"}, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 1)
	assert.Equal(t, 0.95, r.Mappings[0].Confidence)
}

func TestMapColumnsViaExternal_ResolvesTargets(t *testing.T) {
	headers := []string{"ord", "price", "mystery"}
	c := &fakeCompleter{answer: `[
		{"originalName": "ord", "suggestedName": "Order ID", "confidence": "high"},
		{"originalName": "price", "suggestedName": "unit price", "confidence": "high"},
		{"originalName": "mystery", "suggestedName": "MysteryField", "confidence": "high"},
		{"originalName": "not-a-header", "suggestedName": "Quantity", "confidence": "high"}
	]`}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 2)
	assert.Equal(t, "order_id", r.Mappings[0].Target())
	assert.Equal(t, "UnitPrice", r.Mappings[1].Target())
	assert.Equal(t, []string{"mystery"}, r.UnmappedColumns)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, ReasonUnknownTarget, r.Diagnostics[0].Reason)
	assertPartition(t, headers, r)
}

func TestMapColumnsViaExternal_SkipsMalformedElements(t *testing.T) {
	headers := []string{"qty", "foo"}
	c := &fakeCompleter{answer: `[1, "foo", null, {"originalName": ["foo"]}, {"originalName": "qty", "suggestedName": "Quantity", "confidence": "high"}]`}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 1)
	assert.Equal(t, "qty", r.Mappings[0].OriginalName)
	assert.Equal(t, []string{"foo"}, r.UnmappedColumns)
}

func TestMapColumnsViaExternal_FirstSuggestionWins(t *testing.T) {
	c := &fakeCompleter{answer: `[
		{"originalName": "qty", "suggestedName": "Quantity", "confidence": "high"},
		{"originalName": "qty", "suggestedName": "UnitPrice", "confidence": "low"}
	]`}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), []string{"qty", "qty"}, nil, app.IndustryRetail)

	require.Len(t, r.Mappings, 2)
	for _, m := range r.Mappings {
		assert.Equal(t, "Quantity", m.Target())
	}
	assert.Empty(t, r.UnmappedColumns)
}

func TestMapColumnsViaExternal_SampleRowsCapped(t *testing.T) {
	rows := make([]map[string]any, 25)
	for i := range rows {
		rows[i] = map[string]any{"qty": fmt.Sprintf("row-%02d", i)}
	}
	c := &fakeCompleter{answer: "[]"}
	s := newService(c, nil, Options{})

	r := s.MapColumnsViaExternal(context.Background(), []string{"qty"}, rows, app.IndustryRetail)

	assert.Equal(t, []string{"qty"}, r.UnmappedColumns)
	assert.Contains(t, c.user, "row-09")
	assert.NotContains(t, c.user, "row-10")
}

func TestMapColumnsViaExternal_NoCall(t *testing.T) {
	t.Run("empty headers", func(t *testing.T) {
		c := &fakeCompleter{answer: "[]"}
		r := newService(c, nil, Options{}).MapColumnsViaExternal(context.Background(), nil, nil, app.IndustryRetail)

		assert.Empty(t, r.Mappings)
		assert.Empty(t, r.UnmappedColumns)
		assert.Equal(t, app.IndustryRetail, r.IndustryType)
		assert.Zero(t, c.calls)
	})

	t.Run("unknown industry", func(t *testing.T) {
		c := &fakeCompleter{answer: "[]"}
		r := newService(c, nil, Options{}).MapColumnsViaExternal(context.Background(), []string{"qty"}, nil, "space")

		assert.Empty(t, r.Mappings)
		assert.Equal(t, []string{"qty"}, r.UnmappedColumns)
		require.Len(t, r.Diagnostics, 1)
		assert.Equal(t, ReasonNoMatch, r.Diagnostics[0].Reason)
		assert.Zero(t, c.calls)
	})

	t.Run("disabled", func(t *testing.T) {
		s := newService(nil, nil, Options{})
		assert.False(t, s.Enabled())

		r := s.MapColumnsViaExternal(context.Background(), []string{"qty"}, nil, app.IndustryRetail)
		assertDegenerate(t, []string{"qty"}, r)
	})
}

func TestMapColumnsViaExternal_Cache(t *testing.T) {
	headers := []string{"qty", "foo"}
	cache := &memCache{m: map[string]app.MappingResult{}}

	c := &fakeCompleter{answer: `[{"originalName": "qty", "suggestedName": "Quantity", "confidence": "high"}]`}
	s := newService(c, cache, Options{})

	first := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)
	second := s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryRetail)

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, first, second)
	assert.Len(t, cache.m, 1)

	s.MapColumnsViaExternal(context.Background(), headers, nil, app.IndustryHotels)
	assert.Equal(t, 2, c.calls, "industry is part of the key")
}

func TestMapColumnsViaExternal_DegenerateNotCached(t *testing.T) {
	cache := &memCache{m: map[string]app.MappingResult{}}
	c := &fakeCompleter{answer: "not json"}
	s := newService(c, cache, Options{})

	s.MapColumnsViaExternal(context.Background(), []string{"qty"}, nil, app.IndustryRetail)
	s.MapColumnsViaExternal(context.Background(), []string{"qty"}, nil, app.IndustryRetail)

	assert.Equal(t, 2, c.calls)
	assert.Empty(t, cache.m)
}

func TestDecodeSuggestions(t *testing.T) {
	for _, raw := range []string{
		`[{"originalName": "a", "suggestedName": "B"}]`,
		"```json\n[{\"originalName\": \"a\", \"suggestedName\": \"B\"}]\n```",
		"```\n[{\"originalName\": \"a\", \"suggestedName\": \"B\"}]```",
		"  \n[{\"originalName\": \"a\", \"suggestedName\": \"B\"}]\n ",
	} {
		items, err := decodeSuggestions(raw)
		require.Nil(t, err, raw)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].OriginalName)
		require.NotNil(t, items[0].SuggestedName)
		assert.Equal(t, "B", *items[0].SuggestedName)
	}

	items, err := decodeSuggestions("[]")
	assert.Nil(t, err)
	assert.Empty(t, items)

	_, err = decodeSuggestions(`{"a": 1}`)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "decode external response")
	assert.Equal(t, `{"a": 1}`, err.Raw)
}

func TestDescribeCatalogue(t *testing.T) {
	fields := []app.CanonicalField{
		{TargetName: "Order ID", Category: "identifier", Synonyms: []string{"order_id", "orderid"}},
		{TargetName: "Amount", Category: "financial", Synonyms: []string{"amount"}},
	}

	got := describeCatalogue(fields)

	assert.Equal(t, "- **Order ID** (identifier): Matches → order_id, orderid\n- **Amount** (financial): Matches → amount", got)
	assert.True(t, strings.HasPrefix(describeCatalogue(nil), "(No specific patterns"))
}
