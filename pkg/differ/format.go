package differ

import (
	"fmt"
	"strconv"
)

// typeDetail renders an enriched type descriptor for a value: the tag plus
// the value for numbers, a truncated preview for strings, and the element
// count for containers.
func typeDetail(v Value) string {
	switch val := v.(type) {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return fmt.Sprintf("int(%d)", int64(val))
	case Float:
		return fmt.Sprintf("float(%s)", formatFloat(float64(val)))
	case String:
		if val == "" {
			return "str(empty)"
		}
		return fmt.Sprintf("str('%s')", truncate(string(val), 50))
	case Sequence:
		return fmt.Sprintf("list[%d]", len(val))
	case Mapping:
		return fmt.Sprintf("dict[%d]", len(val))
	default:
		return "unknown"
	}
}

// formatLeaf renders a leaf for a value-changed record. Strings are
// quoted; the annotations (empty string as zero-equivalent, digit strings
// with their parsed integer, zero as empty-string-equivalent) are purely
// cosmetic and never drive a comparison decision.
func formatLeaf(v Value) string {
	switch val := v.(type) {
	case String:
		s := string(val)
		if s == "" {
			return "'' (equivalent 0)"
		}
		if isDigits(s) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				return fmt.Sprintf("'%s' (as %d)", s, n)
			}
		}
		return "'" + s + "'"
	case Bool:
		if val {
			return "true"
		}
		return "false"
	case Int:
		if val == 0 {
			return "0 (equivalent '')"
		}
		return strconv.FormatInt(int64(val), 10)
	case Float:
		if val == 0 {
			return "0 (equivalent '')"
		}
		return formatFloat(float64(val))
	case Null:
		return "null"
	default:
		// Containers only show up here when a kind mismatch slipped past a
		// disabled type check; fall back to the type descriptor.
		return typeDetail(v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
