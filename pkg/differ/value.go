package differ

import (
	"errors"
	"fmt"
)

// maxDepth bounds the nesting level accepted during conversion. It guards
// the recursive traversal against adversarial inputs and breaks cyclic
// structures before they can loop forever.
const maxDepth = 1000

// ErrTooDeep is returned when an input tree nests deeper than maxDepth.
var ErrTooDeep = errors.New("maximum nesting depth exceeded")

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindMapping
	KindSequence
)

// Value is the closed set of tree node variants the engine traverses.
type Value interface {
	Kind() Kind
}

// Null is the absent-value scalar.
type Null struct{}

// Bool is a boolean scalar.
type Bool bool

// Int is an integer-valued number. It is a distinct type tag from Float,
// so 100 against 100.0 is a type conflict unless a type group says
// otherwise.
type Int int64

// Float is a non-integer-tagged number.
type Float float64

// String is a text scalar.
type String string

// Mapping is a key-to-value container. Key order is irrelevant.
type Mapping map[string]Value

// Sequence is an ordered list container.
type Sequence []Value

func (Null) Kind() Kind     { return KindNull }
func (Bool) Kind() Kind     { return KindBool }
func (Int) Kind() Kind      { return KindInt }
func (Float) Kind() Kind    { return KindFloat }
func (String) Kind() Kind   { return KindString }
func (Mapping) Kind() Kind  { return KindMapping }
func (Sequence) Kind() Kind { return KindSequence }

func isContainer(v Value) bool {
	k := v.Kind()
	return k == KindMapping || k == KindSequence
}

// fromGo converts a decoded JSON/YAML tree into the private Value form.
// The conversion doubles as the deep copy that keeps the caller's data
// untouched for the lifetime of a comparison.
func fromGo(v interface{}, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		return Int(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case string:
		return String(val), nil
	case map[string]interface{}:
		m := make(Mapping, len(val))
		for key, elem := range val {
			converted, err := fromGo(elem, depth+1)
			if err != nil {
				return nil, err
			}
			m[key] = converted
		}
		return m, nil
	case map[interface{}]interface{}:
		// yaml.v3 falls back to interface keys for non-string mapping keys.
		m := make(Mapping, len(val))
		for key, elem := range val {
			converted, err := fromGo(elem, depth+1)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(key)] = converted
		}
		return m, nil
	case []interface{}:
		seq := make(Sequence, 0, len(val))
		for _, elem := range val {
			converted, err := fromGo(elem, depth+1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, converted)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// rawEqual compares two leaves without any configured equivalence. Int and
// Float compare numerically; every other comparison requires matching
// kinds. Containers always report false, callers dispatch on them first.
func rawEqual(a, b Value) bool {
	if an, ok := numericValue(a); ok {
		if bn, ok := numericValue(b); ok {
			return an == bn
		}
		return false
	}

	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return false
	}
}

// numericValue reports the float64 reading of an Int or Float leaf.
func numericValue(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}
