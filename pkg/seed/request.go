package seed

import (
	"strconv"
	"strings"
)

// Request describes one generation run.
type Request struct {
	// Count is the number of records to ask for. Always greater than zero.
	Count int `json:"count"`

	// Fields are the field names each record must carry, in the order given.
	// Duplicates are kept.
	Fields []string `json:"fields"`
}

// NewRequest parses raw quantity and field inputs into a Request.
func NewRequest(quantity, fields string) (Request, error) {
	count, err := ParseQuantity(quantity)
	if err != nil {
		return Request{}, err
	}

	names, err := ParseFields(fields)
	if err != nil {
		return Request{}, err
	}

	return Request{Count: count, Fields: names}, nil
}

// ParseQuantity parses a base-10 record count. Surrounding whitespace is
// ignored; anything that is not an integer greater than zero is rejected.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, &QuantityError{Input: s}
	}
	return n, nil
}

// ParseFields splits a comma-separated field list and trims each entry.
// Empty entries (from "a,,b" or a trailing comma) are dropped.
func ParseFields(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			fields = append(fields, name)
		}
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return fields, nil
}

// Validate checks the Request invariants.
func (r Request) Validate() error {
	if r.Count <= 0 {
		return &QuantityError{Input: strconv.Itoa(r.Count)}
	}
	if len(r.Fields) == 0 {
		return ErrNoFields
	}
	return nil
}
