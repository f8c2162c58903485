package wanted

import "github.com/bricktools/bricktools/blerrors"

// ValidateUnique checks the per-document key-uniqueness invariant: no two
// entries in the list may share the same (ItemID, Color) pair. The source
// argument names the document in the returned error (a file path, or a
// positional label such as "left" or "right").
//
// It returns a *blerrors.DuplicateKeyError for the first violation found,
// or nil when the invariant holds. Validation is a separate pass from
// parsing so the invariant can be checked on lists constructed in memory.
func ValidateUnique(list *WantedList, source string) error {
	if list == nil {
		return nil
	}
	seen := make(map[ItemKey]int, len(list.Items))
	for i := range list.Items {
		key := list.Items[i].Key()
		if first, dup := seen[key]; dup {
			return &blerrors.DuplicateKeyError{
				Source:     source,
				ItemID:     key.ItemID,
				Color:      list.Items[i].Color,
				FirstIndex: first,
				DupIndex:   i,
			}
		}
		seen[key] = i
	}
	return nil
}
