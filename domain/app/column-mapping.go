package app

// Registered industries.
const (
	IndustryFinance       = "finance"
	IndustryHotels        = "hotels"
	IndustryHR            = "hr"
	IndustryLogistics     = "logistics"
	IndustryManufacturing = "manufacturing"
	IndustryOperations    = "operations"
	IndustryRestaurants   = "restaurants"
	IndustryRetail        = "retail"
)

// Mapping strategies accepted by the mapping service.
const (
	StrategyLocal    = "local"
	StrategyExternal = "external"
	StrategyAuto     = "auto"

	// StrategyReviewed marks results produced by applying review overrides.
	StrategyReviewed = "reviewed"
)

// CanonicalField is one target column of an industry schema.
type CanonicalField struct {
	TargetName string   `json:"targetName"`
	Synonyms   []string `json:"synonyms"`
	Category   string   `json:"category"`
}

// ColumnMapping is the outcome of matching one observed header.
// SuggestedName is nil when no canonical field was accepted for the header.
type ColumnMapping struct {
	OriginalName    string  `json:"originalName"`
	SuggestedName   *string `json:"suggestedName"`
	Confidence      float64 `json:"confidence"`
	ConfidenceLabel string  `json:"confidenceLabel,omitempty"`
	Category        *string `json:"category"`
	Reason          string  `json:"reason,omitempty"`
}

func (m ColumnMapping) IsMapped() bool {
	return m.SuggestedName != nil
}

// Target returns the suggested name or "" for unmapped entries.
func (m ColumnMapping) Target() string {
	if m.SuggestedName == nil {
		return ""
	}
	return *m.SuggestedName
}

// MappingResult is the mapping of a whole header row.
//
// Every observed header appears either in Mappings (by OriginalName) or in
// UnmappedColumns, never in both. Diagnostics carries the reasons recorded for
// unmapped headers when the result came from the external service.
type MappingResult struct {
	Mappings        []ColumnMapping `json:"mappings"`
	UnmappedColumns []string        `json:"unmappedColumns"`
	IndustryType    string          `json:"industryType"`
	Confidence      float64         `json:"confidence"`
	Diagnostics     []ColumnMapping `json:"diagnostics,omitempty"`
}

// MappedNames returns the original names of all mapped entries in order.
func (r MappingResult) MappedNames() []string {
	names := make([]string, 0, len(r.Mappings))
	for _, m := range r.Mappings {
		names = append(names, m.OriginalName)
	}
	return names
}

// Lookup returns the mapping recorded for an original header.
func (r MappingResult) Lookup(original string) (ColumnMapping, bool) {
	for _, m := range r.Mappings {
		if m.OriginalName == original {
			return m, true
		}
	}
	return ColumnMapping{}, false
}

// Classification is the industry picked for a header row.
type Classification struct {
	Industry   string             `json:"industry"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
}

// MapResponse is what the mapping endpoints and the CLI return.
type MapResponse struct {
	UploadID      string        `json:"uploadId"`
	Strategy      string        `json:"strategy"`
	Headers       []string      `json:"headers,omitempty"`
	Result        MappingResult `json:"result"`
	MissingFields []string      `json:"missingFields"`
}

// Override replaces the suggestion for one header during review.
// A nil SuggestedName moves the header to the unmapped set.
type Override struct {
	OriginalName  string  `json:"originalName" validate:"required"`
	SuggestedName *string `json:"suggestedName"`
}

// CommittedMapping is a reviewed result stored for an upload.
type CommittedMapping struct {
	UploadID string        `json:"uploadId"`
	Result   MappingResult `json:"result"`
}
