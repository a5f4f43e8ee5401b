package differ

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReconcile_DuplicateElements(t *testing.T) {
	origin := map[string]interface{}{"tags": []interface{}{"a", "a"}}
	current := map[string]interface{}{"tags": []interface{}{"a"}}

	lines := mustDiff(t, origin, current, nil)
	want := []string{"[list difference] tags[1] (iterable_item_removed)"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestReconcile_BestEffortPairingProducesNestedDiff(t *testing.T) {
	// The second origin element matches exactly (despite being moved);
	// the first pairs best-effort with the leftover mapping, so its field
	// change surfaces instead of a removed/added pair.
	origin := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"id": 1, "name": "x"},
			map[string]interface{}{"id": 2, "name": "y"},
		},
	}
	current := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"id": 2, "name": "y"},
			map[string]interface{}{"id": 1, "name": "z"},
		},
	}

	lines := mustDiff(t, origin, current, nil)
	want := []string{"[value changed] items[0].name origin value: 'x' -> current value: 'z'"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestReconcile_PathUsesOriginIndex(t *testing.T) {
	origin := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"id": 1, "name": "x"},
			map[string]interface{}{"id": 2, "name": "y"},
		},
	}
	// Same elements swapped, one field changed on id 1: the record path
	// keeps the origin index 0, not the current index 1.
	current := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"id": 2, "name": "y"},
			map[string]interface{}{"id": 1, "name": "x2"},
		},
	}

	lines := mustDiff(t, origin, current, nil)
	want := []string{"[value changed] items[0].name origin value: 'x' -> current value: 'x2'"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestReconcile_MixedKindLeftoversFallBackToAddRemove(t *testing.T) {
	origin := map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"a": 1}},
	}
	current := map[string]interface{}{
		"items": []interface{}{[]interface{}{1}},
	}

	lines := mustDiff(t, origin, current, nil)
	want := []string{
		"[list difference] items[0] (iterable_item_removed)",
		"[list difference] items[0] (iterable_item_added)",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestReconcile_LeafTypeDivergencePairsForConflict(t *testing.T) {
	origin := map[string]interface{}{"nums": []interface{}{1}}
	current := map[string]interface{}{"nums": []interface{}{1.0}}

	lines := mustDiff(t, origin, current, nil)
	want := []string{"[type conflict] nums[0] origin type: int(1) -> current type: float(1)"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestReconcile_TypeGroupsBlurExactMatching(t *testing.T) {
	origin := map[string]interface{}{"nums": []interface{}{"100", "7"}}
	current := map[string]interface{}{"nums": []interface{}{7, 100}}

	opts := DefaultOptions()
	opts.TypeGroups = []TypeGroup{{TagInt, TagFloat, TagString}}

	lines := mustDiff(t, origin, current, opts)
	if len(lines) != 0 {
		t.Errorf("expected group-equivalent elements to match, got %v", lines)
	}
}

func TestReconcile_ExcludedElementPaths(t *testing.T) {
	origin := map[string]interface{}{"tags": []interface{}{"a"}}
	current := map[string]interface{}{"tags": []interface{}{"b", "c"}}

	opts := DefaultOptions()
	opts.ExcludeFields = []string{"tags[*]"}

	lines := mustDiff(t, origin, current, opts)
	if len(lines) != 0 {
		t.Errorf("expected wildcard exclusion to silence list records, got %v", lines)
	}
}

func TestPositional_TailMismatch(t *testing.T) {
	origin := map[string]interface{}{"tags": []interface{}{"a", "b", "c"}}
	current := map[string]interface{}{"tags": []interface{}{"a"}}

	opts := DefaultOptions()
	opts.IgnoreOrder = false

	lines := mustDiff(t, origin, current, opts)
	want := []string{
		"[list difference] tags[1] (iterable_item_removed)",
		"[list difference] tags[2] (iterable_item_removed)",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestReconcile_NestedRecursionForcesFlags(t *testing.T) {
	// The origin mapping at index 0 has a redundant key in current;
	// nested list recursion never reports redundancy, even when the
	// top-level call asks for it.
	origin := map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"id": 1}},
	}
	current := map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"id": 1, "extra": 2}},
	}

	opts := DefaultOptions()
	opts.CheckRedundant = true

	lines := mustDiff(t, origin, current, opts)
	if len(lines) != 0 {
		t.Errorf("expected nested recursion to skip redundancy, got %v", lines)
	}
}

func TestSequencesNoValue_SpecialAndTypeChecks(t *testing.T) {
	origin := map[string]interface{}{"vals": []interface{}{"text", 5, "x"}}
	current := map[string]interface{}{"vals": []interface{}{"", -1, 9}}

	opts := DefaultOptions()
	opts.CheckValue = false

	lines := mustDiff(t, origin, current, opts)
	want := []string{
		"[value changed] vals[0] origin value: 'text' -> current value: '' (empty value warning)",
		"[value changed] vals[1] origin value: 5 -> current value: -1 (non-positive warning)",
		"[type conflict] vals[2] origin type: str('x') -> current type: int(9)",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestItemsMatch_DeepStructures(t *testing.T) {
	w := &walker{opts: DefaultOptions()}

	tests := []struct {
		name     string
		origin   Value
		current  Value
		expected bool
	}{
		{
			"identical nested mapping",
			Mapping{"a": Sequence{Int(1), String("x")}},
			Mapping{"a": Sequence{Int(1), String("x")}},
			true,
		},
		{
			"different key count",
			Mapping{"a": Int(1)},
			Mapping{"a": Int(1), "b": Int(2)},
			false,
		},
		{
			"nested value differs",
			Mapping{"a": Sequence{Int(1)}},
			Mapping{"a": Sequence{Int(2)}},
			false,
		},
		{
			"sequence length differs",
			Sequence{Int(1)},
			Sequence{Int(1), Int(1)},
			false,
		},
		{
			"leaf equal",
			String("x"),
			String("x"),
			true,
		},
		{
			"container against leaf",
			Mapping{},
			Int(0),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.itemsMatch(tt.origin, tt.current, true); got != tt.expected {
				t.Errorf("itemsMatch() = %v, want %v", got, tt.expected)
			}
		})
	}
}
