package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Flag is a boolean that decodes leniently. true, non-zero numbers,
// non-empty strings, objects and arrays are true; false, 0, "", null and
// anything unparsable are false. Decoding never fails.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = false
		return nil
	}

	switch data[0] {
	case 't':
		*f = true
	case 'f', 'n':
		*f = false
	case '"':
		var s string
		*f = json.Unmarshal(data, &s) == nil && s != ""
	case '{', '[':
		*f = true
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		*f = Flag(err == nil && n != 0 && !math.IsNaN(n))
	}
	return nil
}
