package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Model is a text-generation capability: prompt in, free-form text out.
type Model interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RecordSet is a validated JSON array returned by the model.
type RecordSet struct {
	// Records are the decoded array elements.
	Records []interface{}

	// raw is the cleaned array text, kept so that saving preserves the
	// element and key order the model produced.
	raw []byte
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Records)
}

// MarshalJSON returns the array as it was parsed.
func (rs *RecordSet) MarshalJSON() ([]byte, error) {
	if rs == nil || rs.raw == nil {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, rs.raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Indent returns the array indented with two spaces and a trailing newline.
func (rs *RecordSet) Indent() ([]byte, error) {
	data, err := rs.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Generate sends prompt to model and validates the answer. The cleaned
// response text is returned alongside the records, and also when parsing
// fails, so callers can show what the model actually said.
func Generate(ctx context.Context, model Model, prompt string) (*RecordSet, string, error) {
	raw, err := model.Complete(ctx, prompt)
	if err != nil {
		return nil, "", fmt.Errorf("model request failed: %w", err)
	}

	cleaned := StripFences(raw)

	records, err := Parse(cleaned)
	if err != nil {
		return nil, cleaned, err
	}

	return records, cleaned, nil
}

// Parse decodes cleaned model output and checks that it is a JSON array.
func Parse(cleaned string) (*RecordSet, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, &MalformedResponseError{Payload: cleaned, Cause: err}
	}

	arr, ok := value.([]interface{})
	if !ok {
		return nil, &UnexpectedShapeError{Kind: jsonKind(value)}
	}

	return &RecordSet{Records: arr, raw: []byte(cleaned)}, nil
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
