package differ

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is the primitive type tag of a Value, the unit type groups are
// declared over.
type Tag string

const (
	TagNull     Tag = "null"
	TagBool     Tag = "bool"
	TagInt      Tag = "int"
	TagFloat    Tag = "float"
	TagString   Tag = "str"
	TagMapping  Tag = "dict"
	TagSequence Tag = "list"
)

// TypeGroup is a set of type tags declared mutually compatible. Two leaves
// whose tags share a group pass the type check, and become candidates for
// value equivalence (a digit string against its parsed number, and so on).
type TypeGroup []Tag

func (g TypeGroup) contains(t Tag) bool {
	for _, member := range g {
		if member == t {
			return true
		}
	}
	return false
}

// ParseTypeGroup builds a TypeGroup from a comma-separated tag list such
// as "int,float,str". The alias "number" expands to int and float;
// "string" is accepted for str.
func ParseTypeGroup(spec string) (TypeGroup, error) {
	var group TypeGroup
	for _, raw := range strings.Split(spec, ",") {
		switch name := strings.TrimSpace(raw); name {
		case "int":
			group = append(group, TagInt)
		case "float":
			group = append(group, TagFloat)
		case "number":
			group = append(group, TagInt, TagFloat)
		case "str", "string":
			group = append(group, TagString)
		case "bool":
			group = append(group, TagBool)
		case "null":
			group = append(group, TagNull)
		case "":
			continue
		default:
			return nil, fmt.Errorf("unknown type tag %q", name)
		}
	}
	if len(group) == 0 {
		return nil, fmt.Errorf("empty type group %q", spec)
	}
	return group, nil
}

func tagOf(v Value) Tag {
	switch v.Kind() {
	case KindNull:
		return TagNull
	case KindBool:
		return TagBool
	case KindInt:
		return TagInt
	case KindFloat:
		return TagFloat
	case KindString:
		return TagString
	case KindMapping:
		return TagMapping
	default:
		return TagSequence
	}
}

func tagsShareGroup(a, b Tag, groups []TypeGroup) bool {
	for _, group := range groups {
		if group.contains(a) && group.contains(b) {
			return true
		}
	}
	return false
}

// sameType reports whether two values are type-compatible: identical tags,
// or both tags appearing together in a configured group.
func sameType(a, b Value, groups []TypeGroup) bool {
	if tagOf(a) == tagOf(b) {
		return true
	}
	return tagsShareGroup(tagOf(a), tagOf(b), groups)
}

// isEquivalentValue reports whether two differently represented leaves
// carry the same information. Equivalence is strictly opt-in: without a
// configured group covering both tags it is always false. Strings that
// fail to parse as numbers are simply not equivalent, never an error.
func isEquivalentValue(a, b Value, groups []TypeGroup) bool {
	if len(groups) == 0 {
		return false
	}
	if !tagsShareGroup(tagOf(a), tagOf(b), groups) {
		return false
	}

	// Empty string and numeric zero.
	if isEmptyString(a) && isNumericZero(b) {
		return true
	}
	if isNumericZero(a) && isEmptyString(b) {
		return true
	}

	// Digit-only string and its parsed integer.
	if ok, eq := digitStringEquals(a, b); ok {
		return eq
	}
	if ok, eq := digitStringEquals(b, a); ok {
		return eq
	}

	// Float-parseable string and a number.
	if ok, eq := parsedFloatEquals(a, b); ok && eq {
		return true
	}
	if ok, eq := parsedFloatEquals(b, a); ok && eq {
		return true
	}

	// Int and float holding the same numeric value.
	if tagOf(a) != tagOf(b) {
		if an, ok := numericValue(a); ok {
			if bn, ok := numericValue(b); ok {
				return an == bn
			}
		}
	}

	return false
}

func isEmptyString(v Value) bool {
	s, ok := v.(String)
	return ok && s == ""
}

func isNumericZero(v Value) bool {
	n, ok := numericValue(v)
	return ok && n == 0
}

func digitStringEquals(s, n Value) (applies bool, equal bool) {
	str, ok := s.(String)
	if !ok || !isDigits(string(str)) {
		return false, false
	}
	num, ok := numericValue(n)
	if !ok {
		return false, false
	}
	parsed, err := strconv.ParseInt(string(str), 10, 64)
	if err != nil {
		return false, false
	}
	return true, float64(parsed) == num
}

func parsedFloatEquals(s, n Value) (applies bool, equal bool) {
	str, ok := s.(String)
	if !ok {
		return false, false
	}
	num, ok := numericValue(n)
	if !ok {
		return false, false
	}
	parsed, err := strconv.ParseFloat(string(str), 64)
	if err != nil {
		return false, false
	}
	return true, parsed == num
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
