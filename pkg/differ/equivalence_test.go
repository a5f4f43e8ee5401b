package differ

import "testing"

var numericStrings = []TypeGroup{{TagInt, TagFloat, TagString}}

func TestSameType(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		groups   []TypeGroup
		expected bool
	}{
		{"same tag", Int(1), Int(2), nil, true},
		{"int vs float", Int(1), Float(1), nil, false},
		{"int vs float grouped", Int(1), Float(1), numericStrings, true},
		{"string vs int", String("1"), Int(1), nil, false},
		{"string vs int grouped", String("1"), Int(1), numericStrings, true},
		{"bool vs int grouped", Bool(true), Int(1), numericStrings, false},
		{"mapping vs sequence", Mapping{}, Sequence{}, nil, false},
		{"mapping vs mapping", Mapping{}, Mapping{"a": Int(1)}, nil, true},
		{"null vs string", Null{}, String(""), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameType(tt.a, tt.b, tt.groups); got != tt.expected {
				t.Errorf("sameType() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsEquivalentValue(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		groups   []TypeGroup
		expected bool
	}{
		// Equivalence is opt-in: nothing matches without groups.
		{"no groups digit string", String("100"), Int(100), nil, false},
		{"no groups empty vs zero", String(""), Int(0), nil, false},

		{"empty string vs int zero", String(""), Int(0), numericStrings, true},
		{"empty string vs float zero", String(""), Float(0), numericStrings, true},
		{"zero vs empty string", Int(0), String(""), numericStrings, true},
		{"empty string vs nonzero", String(""), Int(5), numericStrings, false},

		{"digit string equals int", String("100"), Int(100), numericStrings, true},
		{"digit string wrong int", String("100"), Int(200), numericStrings, false},
		{"digit string vs float", String("100"), Float(100), numericStrings, true},
		{"digit string vs fraction", String("100"), Float(100.5), numericStrings, false},
		{"leading zeros", String("007"), Int(7), numericStrings, true},

		{"float string", String("1.5"), Float(1.5), numericStrings, true},
		{"scientific notation", String("1e3"), Int(1000), numericStrings, true},
		{"unparseable string", String("abc"), Int(1), numericStrings, false},

		{"int vs equal float", Int(100), Float(100), numericStrings, true},
		{"int vs unequal float", Int(100), Float(100.5), numericStrings, false},

		{"same type never equivalent", Int(3), Int(3), numericStrings, false},
		{"ungrouped tag", Bool(true), Int(1), numericStrings, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEquivalentValue(tt.a, tt.b, tt.groups); got != tt.expected {
				t.Errorf("isEquivalentValue() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseTypeGroup(t *testing.T) {
	group, err := ParseTypeGroup("int,float,str")
	if err != nil {
		t.Fatalf("ParseTypeGroup returned error: %v", err)
	}
	for _, tag := range []Tag{TagInt, TagFloat, TagString} {
		if !group.contains(tag) {
			t.Errorf("expected group to contain %s", tag)
		}
	}

	group, err = ParseTypeGroup("number, string")
	if err != nil {
		t.Fatalf("ParseTypeGroup returned error: %v", err)
	}
	for _, tag := range []Tag{TagInt, TagFloat, TagString} {
		if !group.contains(tag) {
			t.Errorf("expected alias group to contain %s", tag)
		}
	}

	if _, err := ParseTypeGroup("int,banana"); err == nil {
		t.Error("expected error for unknown tag")
	}
	if _, err := ParseTypeGroup(""); err == nil {
		t.Error("expected error for empty group")
	}
}
