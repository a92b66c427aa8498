package common

import (
	"github.com/mkuznecov/bank-app/utils"
)

// ResolveAll resolves every id through lookup, preserving the caller's
// order. Duplicates are looked up again, not deduplicated, so the
// result always has positional correspondence with ids. The first id
// that does not resolve aborts the whole batch with a NotFoundError
// naming that id; no partial result is returned.
func ResolveAll[T any](ids []uint, message string, lookup func(id uint) (*T, error)) ([]T, error) {
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		record, err := lookup(id)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, NewNotFound(message, id)
		}
		result = append(result, *record)
	}
	return result, nil
}

// ResolveFound applies the size-check batch policy to the result of a
// bulk fetch: records is whatever the store returned for ids, key
// extracts a record's id. If any requested id is missing the whole
// batch fails with the full missing set; otherwise the records are
// arranged back into request order (duplicates in ids reuse the same
// record).
func ResolveFound[T any](ids []uint, message string, records []T, key func(T) uint) ([]T, error) {
	byID := make(map[uint]T, len(records))
	foundIDs := make([]uint, 0, len(records))
	for _, r := range records {
		byID[key(r)] = r
		foundIDs = append(foundIDs, key(r))
	}

	if err := CheckAllFound(message, ids, foundIDs); err != nil {
		return nil, err
	}

	ordered := make([]T, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}
	return ordered, nil
}

// CheckAllFound is the size-check batch policy: it compares the found
// set against the requested ids and, on a gap, reports the full
// missing set in one NotFoundError. foundIDs must hold the ids of the
// records the bulk fetch actually returned.
func CheckAllFound(message string, ids []uint, foundIDs []uint) error {
	if len(foundIDs) >= len(ids) {
		return nil
	}

	found := make(map[uint]bool, len(foundIDs))
	for _, id := range foundIDs {
		found[id] = true
	}

	var missing []uint
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	utils.ErrorLogger.Printf("%s requested=%v found=%v", message, ids, foundIDs)
	return NewNotFound(message, missing...)
}
