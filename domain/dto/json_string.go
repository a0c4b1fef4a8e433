package dto

import (
	"bytes"
	"encoding/json"
)

// JSONString records a request field that should hold a string, keeping
// enough about the raw JSON value for validation to report type errors
// instead of failing the whole decode.
type JSONString struct {
	Value   string
	Present bool
	// Numeric is set when the raw value was a JSON number.
	Numeric bool
	// Invalid is set for objects, arrays and booleans.
	Invalid bool
}

func (s *JSONString) UnmarshalJSON(b []byte) error {
	*s = JSONString{}
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s.Present = true

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		s.Value = str
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		s.Value = num.String()
		s.Numeric = true
		return nil
	}
	s.Invalid = true
	return nil
}

func (s JSONString) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}
