package differ

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// ErrNotContainer is returned when a root input is neither a mapping nor a
// sequence. A scalar at the root is a usage error, not a diff outcome.
var ErrNotContainer = errors.New("origin and current must both be mappings or sequences")

// Compare diffs current against origin and returns every difference found,
// in traversal order. Inputs are generic decoded trees (map[string]any,
// []any, scalars); they are deep-copied into a private representation
// before traversal and never mutated. A nil opts means DefaultOptions.
//
// The call either completes the full traversal or fails up front: on a
// non-container root (ErrNotContainer) or on input nested beyond the depth
// guard (ErrTooDeep). Expected mismatches are records, never errors.
func Compare(origin, current interface{}, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	originVal, err := fromGo(origin, 0)
	if err != nil {
		return nil, fmt.Errorf("converting origin: %w", err)
	}
	currentVal, err := fromGo(current, 0)
	if err != nil {
		return nil, fmt.Errorf("converting current: %w", err)
	}

	// An empty starting path marks the initial, non-recursive call.
	if opts.Path == "" {
		if !isContainer(originVal) || !isContainer(currentVal) {
			return nil, ErrNotContainer
		}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	w := &walker{opts: opts, log: log}
	records := w.walk(originVal, currentVal, opts.Path, checks{
		value:     opts.CheckValue,
		missing:   opts.CheckMissing,
		redundant: opts.CheckRedundant,
		typ:       opts.CheckType,
	})

	log.Debug("comparison finished", zap.Int("records", len(records)))

	return &Result{
		Records:    records,
		HasChanges: len(records) > 0,
		Summary:    summarize(records),
	}, nil
}

// Diff is the string-oriented form of Compare: one formatted line per
// difference.
func Diff(origin, current interface{}, opts *Options) ([]string, error) {
	result, err := Compare(origin, current, opts)
	if err != nil {
		return nil, err
	}
	return result.Strings(), nil
}

// checks carries the per-call comparison toggles. Recursion into matched
// sequence elements overrides some of them, so they travel separately from
// Options.
type checks struct {
	value     bool
	missing   bool
	redundant bool
	typ       bool
}

type walker struct {
	opts *Options
	log  *zap.Logger
}

// walk is one recursion step of the structural comparison. Each call
// returns its own record slice; callers concatenate.
func (w *walker) walk(origin, current Value, path string, ch checks) []Record {
	if origin.Kind() == KindNull && current.Kind() == KindNull {
		return nil
	}
	if origin.Kind() == KindNull {
		if !ch.missing {
			return nil
		}
		return []Record{{Kind: FieldMissing, Path: path, OriginType: "null"}}
	}
	if current.Kind() == KindNull {
		if !ch.redundant {
			return nil
		}
		return []Record{{Kind: FieldRedundant, Path: path, CurrentType: "null"}}
	}

	switch originVal := origin.(type) {
	case Mapping:
		if currentVal, ok := current.(Mapping); ok {
			return w.compareMappings(originVal, currentVal, path, ch)
		}
	case Sequence:
		if currentVal, ok := current.(Sequence); ok {
			return w.compareSequences(originVal, currentVal, path, ch)
		}
	}

	// Mismatched kinds.
	if ch.typ && !sameType(origin, current, w.opts.TypeGroups) {
		return []Record{{
			Kind:        TypeConflict,
			Path:        path,
			OriginType:  typeDetail(origin),
			CurrentType: typeDetail(current),
		}}
	}
	return nil
}

func (w *walker) compareMappings(origin, current Mapping, path string, ch checks) []Record {
	var records []Record

	for _, key := range sortedKeys(origin) {
		fieldPath := joinPath(path, key)
		if shouldExclude(fieldPath, w.opts.ExcludeFields) {
			continue
		}

		originVal := origin[key]
		currentVal, present := current[key]
		if !present {
			if ch.missing {
				records = append(records, Record{
					Kind:       FieldMissing,
					Path:       fieldPath,
					OriginType: typeDetail(originVal),
				})
			}
			continue
		}

		if isContainer(originVal) {
			records = append(records, w.walk(originVal, currentVal, fieldPath, ch)...)
			continue
		}
		records = append(records, w.compareLeaf(originVal, currentVal, fieldPath, ch)...)
	}

	if ch.redundant {
		for _, key := range sortedKeys(current) {
			if _, present := origin[key]; present {
				continue
			}
			fieldPath := joinPath(path, key)
			if shouldExclude(fieldPath, w.opts.ExcludeFields) {
				continue
			}
			records = append(records, Record{
				Kind:        FieldRedundant,
				Path:        fieldPath,
				CurrentType: typeDetail(current[key]),
			})
		}
	}

	return records
}

// sortedKeys fixes the traversal order; go map iteration would make the
// record order change between runs.
func sortedKeys(m Mapping) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
