package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LooseString accepts a JSON string, number, boolean false or null.
// HTML inputs post numbers as strings and empty inputs as "" or null,
// so optional numeric fields are bound as text and parsed later.
// null, false and "" all decode to the empty value.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*s = ""
		return nil
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return err
		}
		*s = LooseString(num.String())
		return nil
	default:
		return fmt.Errorf("expected string, number or null, got %s", data)
	}
}

// String returns the raw text
func (s LooseString) String() string {
	return string(s)
}
