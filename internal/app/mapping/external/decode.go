package external_mapping_service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// suggestion is one element of the array the remote model answers with.
type suggestion struct {
	OriginalName  string  `json:"originalName" jsonschema_description:"Column name exactly as given"`
	SuggestedName *string `json:"suggestedName" jsonschema_description:"Standard pattern name, null when nothing fits"`
	Confidence    any     `json:"confidence" jsonschema:"enum=high,enum=medium,enum=low" jsonschema_description:"How sure the mapping is"`
	Reason        string  `json:"reason" jsonschema_description:"Brief explanation of the choice"`
}

func (s suggestion) label() string {
	l, _ := s.Confidence.(string)
	return strings.ToLower(strings.TrimSpace(l))
}

// DecodeError means the response as a whole could not be used.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode external response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeSuggestions parses the model answer. The answer must be a JSON array,
// optionally wrapped in a markdown code fence. Elements that are not objects
// of the expected shape are skipped.
func decodeSuggestions(raw string) ([]suggestion, *DecodeError) {
	body := stripFence(raw)
	if body == "" {
		return nil, &DecodeError{Raw: raw, Err: errors.New("empty response")}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(body), &elems); err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}
	if elems == nil {
		return nil, &DecodeError{Raw: raw, Err: errors.New("response is not an array")}
	}

	out := make([]suggestion, 0, len(elems))
	for _, e := range elems {
		var s suggestion
		if err := json.Unmarshal(e, &s); err != nil {
			continue
		}
		if s.OriginalName == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
