package wanted

// Statistics contains aggregate counts over a wanted-list document.
// A Statistics value is derived, never stored: compute it independently on
// each input and on the merged output.
type Statistics struct {
	// TotalItems is the number of entries (lots) in the document
	TotalItems int `json:"total_items" yaml:"total_items"`
	// TotalParts is the sum of effective quantities across entries
	// (an absent MINQTY counts as 1)
	TotalParts int `json:"total_parts" yaml:"total_parts"`
	// UniqueItemColorCount is the number of distinct (item, color) keys.
	// For a valid document this equals TotalItems.
	UniqueItemColorCount int `json:"unique_item_color_count" yaml:"unique_item_color_count"`
	// UniqueColorCount is the number of distinct color codes; entries
	// without a color contribute no color
	UniqueColorCount int `json:"unique_color_count" yaml:"unique_color_count"`
}

// ComputeStats returns statistics for a wanted-list document.
// It is a pure function with no failure modes: a nil or empty list yields
// all-zero statistics.
func ComputeStats(list *WantedList) Statistics {
	var stats Statistics
	if list == nil {
		return stats
	}

	keys := make(map[ItemKey]struct{}, len(list.Items))
	colors := make(map[int]struct{})

	for i := range list.Items {
		item := &list.Items[i]
		stats.TotalItems++
		stats.TotalParts += item.EffectiveQty()

		key := item.Key()
		if _, seen := keys[key]; !seen {
			keys[key] = struct{}{}
			stats.UniqueItemColorCount++
		}

		if item.Color != nil {
			if _, seen := colors[*item.Color]; !seen {
				colors[*item.Color] = struct{}{}
				stats.UniqueColorCount++
			}
		}
	}

	return stats
}
