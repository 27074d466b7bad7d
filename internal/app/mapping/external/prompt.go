package external_mapping_service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/invopop/jsonschema"
)

const systemPrompt = "You are a data mapping specialist. You map spreadsheet column names to the standard patterns " +
	"of one industry. Use the sample data to disambiguate. Return ONLY a JSON array, no explanations or markdown formatting."

func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var suggestionListSchema = GenerateSchema[[]suggestion]()

// mappingInput is the request sent to the model in the user message.
type mappingInput struct {
	Headers                      []string         `json:"headers"`
	SampleRows                   []map[string]any `json:"sampleRows"`
	IndustryCatalogueDescription string           `json:"industryCatalogueDescription"`
}

// describeCatalogue renders the catalogue one field per line:
//
//	- **Order ID** (identifier): Matches → order_id, orderid
func describeCatalogue(fields []app.CanonicalField) string {
	if len(fields) == 0 {
		return "(No specific patterns available for this industry)"
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- **%s** (%s): Matches → %s", f.TargetName, f.Category, strings.Join(f.Synonyms, ", "))
	}
	return b.String()
}

func buildUserPrompt(industry string, in mappingInput) (string, error) {
	inputJSON, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal input: %w", err)
	}
	schemaJSON, err := json.Marshal(suggestionListSchema)
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}

	industry = strings.ToUpper(industry)
	var b strings.Builder
	fmt.Fprintf(&b, "Map the column names to standardized names for the %s industry.\n\n", industry)
	fmt.Fprintf(&b, "### AVAILABLE STANDARD PATTERNS FOR %s:\n%s\n\n", industry, in.IndustryCatalogueDescription)
	fmt.Fprintf(&b, "### INPUT_JSON:\n%s\n\n", inputJSON)
	b.WriteString("### TASK:\n")
	b.WriteString("1. Analyze each column name and its sample data\n")
	b.WriteString("2. Match it to the most appropriate standard pattern from the list above\n")
	b.WriteString("3. If no good match exists, use null as suggestedName\n\n")
	fmt.Fprintf(&b, "### RESPONSE JSON SCHEMA:\n%s\n", schemaJSON)
	return b.String(), nil
}
