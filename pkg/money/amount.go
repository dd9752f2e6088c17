// Package money holds the monetary value type shared by stored bills and
// the API.
package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value. Decoding never fails: numbers and numeric
// strings are accepted, anything else (including "" and null) becomes 0.
type Amount float64

// Float64 returns the amount as a float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	*a = Parse(s)
	return nil
}

// Parse converts user input to an Amount, coercing invalid input to 0.
func Parse(s string) Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(f)
}
