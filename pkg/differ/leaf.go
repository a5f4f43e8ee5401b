package differ

import (
	"strconv"
	"strings"
)

// compareLeaf compares two non-container values at path. With value
// checking on, equivalence wins over the type check, which wins over the
// raw comparison; with it off, only the special value check applies.
func (w *walker) compareLeaf(origin, current Value, path string, ch checks) []Record {
	if !ch.value {
		return specialValueCheck(origin, current, path)
	}

	if isEquivalentValue(origin, current, w.opts.TypeGroups) {
		return nil
	}

	if ch.typ && !sameType(origin, current, w.opts.TypeGroups) {
		return []Record{{
			Kind:        TypeConflict,
			Path:        path,
			OriginType:  typeDetail(origin),
			CurrentType: typeDetail(current),
		}}
	}

	if !rawEqual(origin, current) {
		return []Record{{
			Kind:         ValueChanged,
			Path:         path,
			OriginValue:  formatLeaf(origin),
			CurrentValue: formatLeaf(current),
		}}
	}

	return nil
}

// specialValueCheck is the reduced comparison used when value checking is
// disabled. It still flags a non-blank string going blank and a changed
// number landing at or below zero, as warnings.
func specialValueCheck(origin, current Value, path string) []Record {
	if os, ok := origin.(String); ok {
		cs, ok := current.(String)
		if !ok {
			return nil
		}
		if strings.TrimSpace(string(os)) != "" && strings.TrimSpace(string(cs)) == "" {
			return []Record{{
				Kind:         ValueChanged,
				Path:         path,
				OriginValue:  "'" + truncate(string(os), 30) + "'",
				CurrentValue: "'" + truncate(string(cs), 30) + "'",
				Note:         "empty value warning",
			}}
		}
		return nil
	}

	on, ok := numericValue(origin)
	if !ok {
		return nil
	}
	cn, ok := numericValue(current)
	if !ok {
		return nil
	}
	if on != cn && cn <= 0 {
		return []Record{{
			Kind:         ValueChanged,
			Path:         path,
			OriginValue:  formatPlainNumber(origin),
			CurrentValue: formatPlainNumber(current),
			Note:         "non-positive warning",
		}}
	}
	return nil
}

// formatPlainNumber renders a number without the cosmetic annotations of
// formatLeaf; warning records show raw values.
func formatPlainNumber(v Value) string {
	switch n := v.(type) {
	case Int:
		return strconv.FormatInt(int64(n), 10)
	case Float:
		return formatFloat(float64(n))
	default:
		return typeDetail(v)
	}
}
