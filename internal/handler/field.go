package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a request value that arrives as a JSON string or number.
// Numbers keep their literal text ("NCM": 123 reads as "123"). Zero, null
// and the empty string all read as empty, so `validate:"required"` treats
// them as missing.
type Field string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("field must be a string or a number: %w", err)
	}
	if v, err := n.Float64(); err == nil && v == 0 {
		*f = ""
		return nil
	}
	*f = Field(n.String())
	return nil
}

// String returns the value as text.
func (f Field) String() string {
	return string(f)
}
