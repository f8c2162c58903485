package wanted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKey(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		wantKey    ItemKey
		wantString string
	}{
		{
			name:       "with color",
			item:       Item{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(5)},
			wantKey:    ItemKey{ItemID: "3001", Color: 5, HasColor: true},
			wantString: "3001/5",
		},
		{
			name:       "without color",
			item:       Item{ItemType: ItemTypePart, ItemID: "3039"},
			wantKey:    ItemKey{ItemID: "3039"},
			wantString: "3039/-",
		},
		{
			name:       "color zero is a real color",
			item:       Item{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(0)},
			wantKey:    ItemKey{ItemID: "3001", Color: 0, HasColor: true},
			wantString: "3001/0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKey, tt.item.Key())
			assert.Equal(t, tt.wantString, tt.item.Key().String())
		})
	}
}

func TestItemKeyColorZeroDistinctFromColorless(t *testing.T) {
	colored := Item{ItemType: ItemTypePart, ItemID: "3001", Color: Ptr(0)}
	colorless := Item{ItemType: ItemTypePart, ItemID: "3001"}
	assert.NotEqual(t, colored.Key(), colorless.Key())
}

func TestEffectiveQty(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want int
	}{
		{name: "explicit quantity", item: Item{ItemID: "3001", MinQty: Ptr(100)}, want: 100},
		{name: "absent quantity defaults to 1", item: Item{ItemID: "3039"}, want: 1},
		{name: "zero quantity stays zero", item: Item{ItemID: "3622", MinQty: Ptr(0)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.EffectiveQty())
		})
	}
}

func TestItemClone(t *testing.T) {
	original := Item{
		ItemType:     ItemTypePart,
		ItemID:       "3001",
		Color:        Ptr(5),
		MaxPrice:     Ptr(1.00),
		MinQty:       Ptr(100),
		QtyFilled:    Ptr(4),
		Condition:    Ptr(ConditionNew),
		Remarks:      Ptr("for MOC AB154A"),
		Notify:       Ptr(NotifyNo),
		WantedShow:   Ptr(WantedShowYes),
		WantedListID: Ptr("12345"),
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	*clone.Color = 86
	*clone.MinQty = 1
	*clone.Remarks = "changed"
	assert.Equal(t, 5, *original.Color)
	assert.Equal(t, 100, *original.MinQty)
	assert.Equal(t, "for MOC AB154A", *original.Remarks)
}

func TestItemCloneNilFields(t *testing.T) {
	original := Item{ItemType: ItemTypePart, ItemID: "3039"}
	clone := original.Clone()
	assert.Equal(t, original, clone)
	assert.Nil(t, clone.Color)
	assert.Nil(t, clone.MinQty)
}

func TestWantedListClone(t *testing.T) {
	list := &WantedList{Items: []Item{
		{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11), MinQty: Ptr(2)},
		{ItemType: ItemTypePart, ItemID: "3039"},
	}}

	clone := list.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, list, clone)

	*clone.Items[0].Color = 99
	assert.Equal(t, 11, *list.Items[0].Color)

	var nilList *WantedList
	assert.Nil(t, nilList.Clone())
}

func TestConstantValidation(t *testing.T) {
	assert.True(t, IsValidItemType("P"))
	assert.True(t, IsValidItemType("S"))
	assert.False(t, IsValidItemType("Z"))
	assert.False(t, IsValidItemType(""))
	assert.Len(t, ValidItemTypes(), 9)

	assert.True(t, IsValidCondition("N"))
	assert.True(t, IsValidCondition("X"))
	assert.False(t, IsValidCondition("Q"))

	assert.True(t, IsValidNotify("Y"))
	assert.True(t, IsValidNotify("N"))
	assert.False(t, IsValidNotify("y"))

	assert.True(t, IsValidWantedShow("Y"))
	assert.False(t, IsValidWantedShow(""))
}
