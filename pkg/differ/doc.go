// Package differ compares two arbitrarily nested trees of mappings,
// sequences and scalars ("origin" and "current") and reports every field
// that was added, removed, retyped or changed in value.
//
// Inputs are the generic go types produced by unmarshaling JSON or YAML:
//
//	map[string]interface{}
//	[]interface{}
//	string, int, float64, bool, nil
//
// Both trees are converted into a private Value representation before
// traversal, so the caller's structures are never touched.
//
// Sequences are reconciled order-insensitively by default: elements are
// paired by deep equality first, then by best-effort kind compatibility,
// and only the leftovers become added/removed records. Dotted exclusion
// patterns (with [*] index wildcards) remove whole subtrees from every
// check, and configurable type groups let values like "100" and 100 pass
// as equivalent.
package differ
