package differ

import "go.uber.org/zap"

// compareSequences dispatches a sequence pair to the right strategy:
// content reconciliation when order is ignored, positional comparison
// otherwise, and the reduced special-value pass when value checking is
// off.
func (w *walker) compareSequences(origin, current Sequence, path string, ch checks) []Record {
	if !ch.value {
		return w.compareSequencesNoValue(origin, current, path, ch)
	}
	if w.opts.IgnoreOrder {
		return w.reconcileSequences(origin, current, path, ch)
	}
	return w.compareSequencesPositional(origin, current, path, ch)
}

// reconcileSequences pairs elements of two sequences before recursing,
// ignoring their positions. Two greedy first-fit passes run in origin
// order: an exact pass claiming deeply equal elements, then a best-effort
// pass claiming merely kind-compatible ones so that changed-but-similar
// elements still surface field-level diffs instead of an opaque
// removed/added pair. Leftover origin indices become removals, leftover
// current indices additions. Matched pairs recurse at the origin index, so
// a pure reordering produces no records at all.
//
// First fit is deterministic but not globally optimal; a different pairing
// could yield fewer records. That tradeoff is intentional.
func (w *walker) reconcileSequences(origin, current Sequence, path string, ch checks) []Record {
	w.log.Debug("reconciling sequences",
		zap.String("path", path),
		zap.Int("origin_len", len(origin)),
		zap.Int("current_len", len(current)))

	pairedWith := make([]int, len(origin))
	for i := range pairedWith {
		pairedWith[i] = -1
	}
	claimed := make([]bool, len(current))

	// Exact pass: first deep match wins, no backtracking.
	for i, originItem := range origin {
		for j, currentItem := range current {
			if claimed[j] {
				continue
			}
			if w.itemsMatch(originItem, currentItem, ch.typ) {
				pairedWith[i] = j
				claimed[j] = true
				break
			}
		}
	}

	// Best-effort pass: pair leftovers that are at least the same kind of
	// thing, to drive a recursive diff between them.
	for i, originItem := range origin {
		if pairedWith[i] >= 0 {
			continue
		}
		for j, currentItem := range current {
			if claimed[j] {
				continue
			}
			if looselyCompatible(originItem, currentItem) {
				pairedWith[i] = j
				claimed[j] = true
				break
			}
		}
	}

	var records []Record

	for i := range origin {
		if pairedWith[i] >= 0 {
			continue
		}
		elemPath := indexPath(path, i)
		if shouldExclude(elemPath, w.opts.ExcludeFields) {
			continue
		}
		records = append(records, Record{
			Kind:       ListItemRemoved,
			Path:       elemPath,
			OriginType: typeDetail(origin[i]),
		})
	}

	for j := range current {
		if claimed[j] {
			continue
		}
		elemPath := indexPath(path, j)
		if shouldExclude(elemPath, w.opts.ExcludeFields) {
			continue
		}
		records = append(records, Record{
			Kind:        ListItemAdded,
			Path:        elemPath,
			CurrentType: typeDetail(current[j]),
		})
	}

	// Recurse into every pairing, exact ones included: an exact match can
	// still hide differences once type groups blur leaf equality.
	for i, j := range pairedWith {
		if j < 0 {
			continue
		}
		elemPath := indexPath(path, i)
		if shouldExclude(elemPath, w.opts.ExcludeFields) {
			continue
		}
		records = append(records, w.comparePairedElements(origin[i], current[j], elemPath, ch)...)
	}

	return records
}

// comparePairedElements diffs one matched pair of sequence elements.
// Nested recursion always re-enables the value and missing checks and
// disables redundancy, whatever the top-level call used.
func (w *walker) comparePairedElements(originItem, currentItem Value, elemPath string, ch checks) []Record {
	nested := checks{value: true, missing: true, redundant: false, typ: ch.typ}

	switch {
	case isContainer(originItem) && isContainer(currentItem):
		return w.walk(originItem, currentItem, elemPath, nested)
	case isContainer(originItem) || isContainer(currentItem):
		if !ch.typ {
			return nil
		}
		return []Record{{
			Kind:        TypeConflict,
			Path:        elemPath,
			OriginType:  typeDetail(originItem),
			CurrentType: typeDetail(currentItem),
		}}
	default:
		return w.compareLeaf(originItem, currentItem, elemPath, nested)
	}
}

// compareSequencesPositional compares element i against element i; length
// mismatch turns the non-overlapping tail into added/removed records.
func (w *walker) compareSequencesPositional(origin, current Sequence, path string, ch checks) []Record {
	var records []Record

	maxLen := len(origin)
	if len(current) > maxLen {
		maxLen = len(current)
	}

	for i := 0; i < maxLen; i++ {
		elemPath := indexPath(path, i)
		if shouldExclude(elemPath, w.opts.ExcludeFields) {
			continue
		}

		if i >= len(origin) {
			records = append(records, Record{
				Kind:        ListItemAdded,
				Path:        elemPath,
				CurrentType: typeDetail(current[i]),
			})
			continue
		}
		if i >= len(current) {
			records = append(records, Record{
				Kind:       ListItemRemoved,
				Path:       elemPath,
				OriginType: typeDetail(origin[i]),
			})
			continue
		}

		records = append(records, w.comparePairedElements(origin[i], current[i], elemPath, ch)...)
	}

	return records
}

// compareSequencesNoValue handles sequences when value checking is off:
// positional special-value checks over the overlapping prefix, plus a bare
// type check for leaves.
func (w *walker) compareSequencesNoValue(origin, current Sequence, path string, ch checks) []Record {
	var records []Record

	minLen := len(origin)
	if len(current) < minLen {
		minLen = len(current)
	}

	for i := 0; i < minLen; i++ {
		elemPath := indexPath(path, i)
		if shouldExclude(elemPath, w.opts.ExcludeFields) {
			continue
		}

		originItem, currentItem := origin[i], current[i]
		if isContainer(originItem) && isContainer(currentItem) {
			records = append(records, w.walk(originItem, currentItem, elemPath, ch)...)
			continue
		}

		records = append(records, specialValueCheck(originItem, currentItem, elemPath)...)
		if ch.typ && !sameType(originItem, currentItem, w.opts.TypeGroups) {
			records = append(records, Record{
				Kind:        TypeConflict,
				Path:        elemPath,
				OriginType:  typeDetail(originItem),
				CurrentType: typeDetail(currentItem),
			})
		}
	}

	return records
}

// itemsMatch is the deep equality predicate of the exact pass. Containers
// must match recursively in every key and element; leaves must be equal or
// group-equivalent. The type check applies at every level when enabled.
func (w *walker) itemsMatch(originItem, currentItem Value, checkType bool) bool {
	if checkType && !sameType(originItem, currentItem, w.opts.TypeGroups) {
		return false
	}

	if !isContainer(originItem) && !isContainer(currentItem) {
		if isEquivalentValue(originItem, currentItem, w.opts.TypeGroups) {
			return true
		}
		return rawEqual(originItem, currentItem)
	}

	if om, ok := originItem.(Mapping); ok {
		cm, ok := currentItem.(Mapping)
		if !ok || len(om) != len(cm) {
			return false
		}
		for key, ov := range om {
			cv, ok := cm[key]
			if !ok || !w.itemsMatch(ov, cv, checkType) {
				return false
			}
		}
		return true
	}

	if os, ok := originItem.(Sequence); ok {
		cs, ok := currentItem.(Sequence)
		if !ok || len(os) != len(cs) {
			return false
		}
		for i := range os {
			if !w.itemsMatch(os[i], cs[i], checkType) {
				return false
			}
		}
		return true
	}

	return false
}

// looselyCompatible is the best-effort pairing predicate: containers pair
// with containers of the same concrete kind, leaves pair when their raw
// values already agree (so only their type tags differ). Mismatched
// container kinds never pair; those fall through to a bare removed/added
// pair.
func looselyCompatible(originItem, currentItem Value) bool {
	if originItem.Kind() == KindMapping && currentItem.Kind() == KindMapping {
		return true
	}
	if originItem.Kind() == KindSequence && currentItem.Kind() == KindSequence {
		return true
	}
	if !isContainer(originItem) && !isContainer(currentItem) {
		return rawEqual(originItem, currentItem)
	}
	return false
}
