package schema_registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/column-mapper/internal/app/mapping/similarity"
)

// Catalogue is the schema of one industry.
type Catalogue struct {
	Industry string
	Fields   []app.CanonicalField
}

// Registry is an immutable set of industry catalogues. Industries iterate in
// lexical order, which is also the classifier's tie-break order.
type Registry struct {
	industries []string
	catalogues map[string][]app.CanonicalField
}

var _ app.SchemaRegistry = &Registry{}

// New validates and freezes the given catalogues.
func New(catalogues ...Catalogue) (*Registry, error) {
	r := &Registry{
		industries: make([]string, 0, len(catalogues)),
		catalogues: make(map[string][]app.CanonicalField, len(catalogues)),
	}

	for _, c := range catalogues {
		if strings.TrimSpace(c.Industry) == "" {
			return nil, errors.New("catalogue without industry name")
		}
		if _, ok := r.catalogues[c.Industry]; ok {
			return nil, fmt.Errorf("industry %q registered twice", c.Industry)
		}

		seen := make(map[string]struct{}, len(c.Fields))
		fields := make([]app.CanonicalField, 0, len(c.Fields))
		for _, f := range c.Fields {
			if f.TargetName == "" {
				return nil, fmt.Errorf("%s: field without target name", c.Industry)
			}
			if len(f.Synonyms) == 0 {
				return nil, fmt.Errorf("%s: field %q has no synonyms", c.Industry, f.TargetName)
			}
			if _, ok := seen[f.TargetName]; ok {
				return nil, fmt.Errorf("%s: duplicate target %q", c.Industry, f.TargetName)
			}
			seen[f.TargetName] = struct{}{}
			fields = append(fields, cloneField(f))
		}

		r.industries = append(r.industries, c.Industry)
		r.catalogues[c.Industry] = fields
	}

	slices.Sort(r.industries)
	return r, nil
}

func MustNew(catalogues ...Catalogue) *Registry {
	r, err := New(catalogues...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNew(builtinCatalogues()...)
})

// Default returns the registry with the built-in industry catalogues.
func Default() *Registry {
	return defaultRegistry()
}

// Industries lists registered industries in lexical order.
func (r *Registry) Industries() []string {
	return slices.Clone(r.industries)
}

func (r *Registry) Has(industry string) bool {
	_, ok := r.catalogues[industry]
	return ok
}

// CatalogueFor returns a copy of the industry's fields in catalogue order.
// Unknown industries yield an empty slice.
func (r *Registry) CatalogueFor(industry string) []app.CanonicalField {
	fields := r.catalogues[industry]
	out := make([]app.CanonicalField, 0, len(fields))
	for _, f := range fields {
		out = append(out, cloneField(f))
	}
	return out
}

// Field finds a field of the industry whose target name equals name after
// normalization, so "Order ID" resolves "order_id" style spellings.
func (r *Registry) Field(industry, name string) (app.CanonicalField, bool) {
	n := similarity.Normalize(name)
	for _, f := range r.catalogues[industry] {
		if similarity.Normalize(f.TargetName) == n {
			return cloneField(f), true
		}
	}
	return app.CanonicalField{}, false
}

// TargetNames lists the canonical target names of an industry.
func (r *Registry) TargetNames(industry string) []string {
	fields := r.catalogues[industry]
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.TargetName)
	}
	return names
}

func cloneField(f app.CanonicalField) app.CanonicalField {
	f.Synonyms = slices.Clone(f.Synonyms)
	return f
}
