package utils

import (
	"fmt"
	"strconv"
)

// ToString converts a decoded JSON cell value to its string form.
// The values API may hand back numbers or booleans for cells a human
// typed; the sync treats every cell as text.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		// Avoid the %v exponent form for large row counts and ids.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
