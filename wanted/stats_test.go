package wanted

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name string
		list *WantedList
		want Statistics
	}{
		{
			name: "nil list",
			list: nil,
			want: Statistics{},
		},
		{
			name: "empty list",
			list: &WantedList{},
			want: Statistics{},
		},
		{
			name: "single entry with quantity",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(5), MinQty: Ptr(100)},
			}},
			want: Statistics{TotalItems: 1, TotalParts: 100, UniqueItemColorCount: 1, UniqueColorCount: 1},
		},
		{
			name: "absent quantity counts as one part",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3039"},
			}},
			want: Statistics{TotalItems: 1, TotalParts: 1, UniqueItemColorCount: 1, UniqueColorCount: 0},
		},
		{
			name: "colors shared across entries",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11), MinQty: Ptr(2)},
				{ItemType: ItemTypePart, ItemID: "3623", Color: Ptr(11), MinQty: Ptr(3)},
				{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(5)},
			}},
			want: Statistics{TotalItems: 3, TotalParts: 6, UniqueItemColorCount: 3, UniqueColorCount: 2},
		},
		{
			name: "same item in two colors",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(5), MinQty: Ptr(4)},
				{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(86), MinQty: Ptr(6)},
				{ItemType: ItemTypePart, ItemID: "3001"},
			}},
			want: Statistics{TotalItems: 3, TotalParts: 11, UniqueItemColorCount: 3, UniqueColorCount: 2},
		},
		{
			name: "duplicate keys collapse in unique count",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11), MinQty: Ptr(2)},
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11), MinQty: Ptr(3)},
			}},
			want: Statistics{TotalItems: 2, TotalParts: 5, UniqueItemColorCount: 1, UniqueColorCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.list))
		})
	}
}
