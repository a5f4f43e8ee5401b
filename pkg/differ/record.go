package differ

import (
	"fmt"
	"strings"
)

// RecordKind tags the six difference variants a comparison can produce.
type RecordKind string

const (
	FieldMissing    RecordKind = "field_missing"
	FieldRedundant  RecordKind = "field_redundant"
	TypeConflict    RecordKind = "type_conflict"
	ValueChanged    RecordKind = "value_changed"
	ListItemAdded   RecordKind = "list_item_added"
	ListItemRemoved RecordKind = "list_item_removed"
)

// Record is a single difference found during traversal. Records are
// created while comparing, appended to the result in traversal order and
// never mutated afterwards; they hold formatted descriptors only, no
// references back into the input trees.
type Record struct {
	Kind         RecordKind `json:"kind"`
	Path         string     `json:"path"`
	OriginType   string     `json:"origin_type,omitempty"`
	CurrentType  string     `json:"current_type,omitempty"`
	OriginValue  string     `json:"origin_value,omitempty"`
	CurrentValue string     `json:"current_value,omitempty"`
	// Note carries a warning suffix emitted by the special value check.
	Note string `json:"note,omitempty"`
}

// String renders the record in the tool's one-line report format.
func (r Record) String() string {
	switch r.Kind {
	case FieldMissing:
		return fmt.Sprintf("[missing field] %s (origin type: %s)", r.Path, r.OriginType)
	case FieldRedundant:
		return fmt.Sprintf("[redundant field] %s (current type: %s)", r.Path, r.CurrentType)
	case TypeConflict:
		return fmt.Sprintf("[type conflict] %s origin type: %s -> current type: %s",
			r.Path, r.OriginType, r.CurrentType)
	case ValueChanged:
		line := fmt.Sprintf("[value changed] %s origin value: %s -> current value: %s",
			r.Path, r.OriginValue, r.CurrentValue)
		if r.Note != "" {
			line += " (" + r.Note + ")"
		}
		return line
	case ListItemAdded:
		return fmt.Sprintf("[list difference] %s (iterable_item_added)", r.Path)
	case ListItemRemoved:
		return fmt.Sprintf("[list difference] %s (iterable_item_removed)", r.Path)
	default:
		return fmt.Sprintf("[unknown] %s", r.Path)
	}
}

// Result is the outcome of a full comparison.
type Result struct {
	Records    []Record `json:"records"`
	HasChanges bool     `json:"has_changes"`
	Summary    string   `json:"summary"`
}

// Strings returns the formatted one-line report for every record, in
// traversal order.
func (r *Result) Strings() []string {
	lines := make([]string, len(r.Records))
	for i, rec := range r.Records {
		lines[i] = rec.String()
	}
	return lines
}

func summarize(records []Record) string {
	if len(records) == 0 {
		return "no differences found"
	}

	counts := map[RecordKind]int{}
	for _, rec := range records {
		counts[rec.Kind]++
	}

	labels := []struct {
		kind RecordKind
		name string
	}{
		{FieldMissing, "missing fields"},
		{FieldRedundant, "redundant fields"},
		{TypeConflict, "type conflicts"},
		{ValueChanged, "value changes"},
		{ListItemAdded, "list additions"},
		{ListItemRemoved, "list removals"},
	}

	parts := []string{}
	for _, label := range labels {
		if n := counts[label.kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label.name))
		}
	}

	return fmt.Sprintf("%s (%d total differences)", strings.Join(parts, ", "), len(records))
}
