package wanted

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricktools/bricktools/blerrors"
)

func TestValidateUnique(t *testing.T) {
	tests := []struct {
		name    string
		list    *WantedList
		wantErr bool
		check   func(t *testing.T, dupErr *blerrors.DuplicateKeyError)
	}{
		{
			name: "nil list is valid",
			list: nil,
		},
		{
			name: "unique keys",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11)},
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(5)},
				{ItemType: ItemTypePart, ItemID: "3622"},
			}},
		},
		{
			name: "duplicate colored key",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11)},
				{ItemType: ItemTypePart, ItemID: "3039"},
				{ItemType: ItemTypePart, ItemID: "3622", Color: Ptr(11)},
			}},
			wantErr: true,
			check: func(t *testing.T, dupErr *blerrors.DuplicateKeyError) {
				assert.Equal(t, "3622/11", dupErr.Key())
				assert.Equal(t, 0, dupErr.FirstIndex)
				assert.Equal(t, 2, dupErr.DupIndex)
			},
		},
		{
			name: "duplicate colorless key",
			list: &WantedList{Items: []Item{
				{ItemType: ItemTypePart, ItemID: "3039"},
				{ItemType: ItemTypePart, ItemID: "3039"},
			}},
			wantErr: true,
			check: func(t *testing.T, dupErr *blerrors.DuplicateKeyError) {
				assert.Equal(t, "3039/-", dupErr.Key())
				assert.Nil(t, dupErr.Color)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUnique(tt.list, "wanted.xml")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, blerrors.ErrDuplicateKey)

			var dupErr *blerrors.DuplicateKeyError
			require.True(t, errors.As(err, &dupErr))
			assert.Equal(t, "wanted.xml", dupErr.Source)
			if tt.check != nil {
				tt.check(t, dupErr)
			}
		})
	}
}

func TestValidateUniqueReportsFirstViolation(t *testing.T) {
	list := &WantedList{Items: []Item{
		{ItemType: ItemTypePart, ItemID: "a", Color: Ptr(1)},
		{ItemType: ItemTypePart, ItemID: "b", Color: Ptr(1)},
		{ItemType: ItemTypePart, ItemID: "a", Color: Ptr(1)},
		{ItemType: ItemTypePart, ItemID: "b", Color: Ptr(1)},
	}}

	var dupErr *blerrors.DuplicateKeyError
	require.True(t, errors.As(ValidateUnique(list, "src"), &dupErr))
	assert.Equal(t, "a/1", dupErr.Key())
	assert.Equal(t, 2, dupErr.DupIndex)
}
