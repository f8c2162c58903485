package wanted

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricktools/bricktools/blerrors"
)

func TestParseFile(t *testing.T) {
	p := New()
	result, err := p.Parse(filepath.Join("testdata", "bricklink_example.xml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "bricklink_example.xml"), result.SourcePath)
	assert.Greater(t, result.SourceSize, int64(0))
	require.Len(t, result.List.Items, 3)

	// Entry 1: 3622 in color 11 with QTYFILLED only.
	first := result.List.Items[0]
	assert.Equal(t, "3622", first.ItemID)
	require.NotNil(t, first.Color)
	assert.Equal(t, 11, *first.Color)
	require.NotNil(t, first.QtyFilled)
	assert.Equal(t, 4, *first.QtyFilled)
	assert.Nil(t, first.MinQty)

	// Entry 2: colorless 3039 with nothing optional set.
	second := result.List.Items[1]
	assert.Equal(t, "3039", second.ItemID)
	assert.Nil(t, second.Color)

	// Entry 3: fully populated 3001.
	third := result.List.Items[2]
	assert.Equal(t, "3001", third.ItemID)
	require.NotNil(t, third.MinQty)
	assert.Equal(t, 100, *third.MinQty)
	require.NotNil(t, third.Condition)
	assert.Equal(t, ConditionNew, *third.Condition)

	// 3622 contributes 1 (no MINQTY), 3039 contributes 1, 3001 contributes 100.
	assert.Equal(t, Statistics{
		TotalItems:           3,
		TotalParts:           102,
		UniqueItemColorCount: 3,
		UniqueColorCount:     2,
	}, result.Stats)
}

func TestParseFileNotFound(t *testing.T) {
	p := New()
	_, err := p.Parse(filepath.Join("testdata", "does_not_exist.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseDuplicateKey(t *testing.T) {
	p := New()
	_, err := p.Parse(filepath.Join("testdata", "duplicate_key.xml"))
	require.Error(t, err)

	var dupErr *blerrors.DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "3622/11", dupErr.Key())
	assert.Equal(t, 0, dupErr.FirstIndex)
	assert.Equal(t, 2, dupErr.DupIndex)
	assert.Contains(t, dupErr.Source, "duplicate_key.xml")
}

func TestParseDuplicateKeyValidationDisabled(t *testing.T) {
	p := New()
	p.ValidateStructure = false

	result, err := p.Parse(filepath.Join("testdata", "duplicate_key.xml"))
	require.NoError(t, err)
	assert.Len(t, result.List.Items, 3)
	// Duplicate keys still collapse in the uniqueness count.
	assert.Equal(t, 2, result.Stats.UniqueItemColorCount)
}

func TestParseReader(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<INVENTORY>
  <ITEM>
    <ITEMTYPE>P</ITEMTYPE>
    <ITEMID>3622</ITEMID>
    <COLOR>11</COLOR>
    <MINQTY>4</MINQTY>
  </ITEM>
</INVENTORY>`

	p := New()
	result, err := p.ParseReader(strings.NewReader(data), "<stdin>")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", result.SourcePath)
	assert.Equal(t, int64(len(data)), result.SourceSize)
	require.Len(t, result.List.Items, 1)
	assert.Equal(t, "3622", result.List.Items[0].ItemID)
}

func TestParseBytesEmptyInventory(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(`<INVENTORY></INVENTORY>`), "empty")
	require.NoError(t, err)
	assert.Empty(t, result.List.Items)
	assert.Equal(t, Statistics{}, result.Stats)
}

func TestParseBytesMalformed(t *testing.T) {
	p := New()
	_, err := p.ParseBytes([]byte(`not xml at all <<`), "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, blerrors.ErrParse)
}

func TestParseBytesWarnings(t *testing.T) {
	data := `<INVENTORY>
  <ITEM>
    <ITEMTYPE>P</ITEMTYPE>
    <ITEMID>3622</ITEMID>
    <COLOR>11</COLOR>
    <MINQTY>2</MINQTY>
    <QTYFILLED>5</QTYFILLED>
  </ITEM>
  <ITEM>
    <ITEMTYPE>P</ITEMTYPE>
    <ITEMID>3001</ITEMID>
    <COLOR>5</COLOR>
    <MAXPRICE>0.00</MAXPRICE>
  </ITEM>
  <ITEM>
    <ITEMTYPE>P</ITEMTYPE>
    <ITEMID>3039</ITEMID>
  </ITEM>
</INVENTORY>`

	p := New()
	result, err := p.ParseBytes([]byte(data), "warn")
	require.NoError(t, err)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "QTYFILLED 5 exceeds wanted quantity 2")
	assert.Contains(t, result.Warnings[0], "3622")
	assert.Contains(t, result.Warnings[1], "MAXPRICE 0.00")
	assert.Contains(t, result.Warnings[1], "3001")
}

func TestParseBytesNoWarnings(t *testing.T) {
	data := `<INVENTORY>
  <ITEM>
    <ITEMTYPE>P</ITEMTYPE>
    <ITEMID>3622</ITEMID>
    <COLOR>11</COLOR>
    <MINQTY>4</MINQTY>
    <QTYFILLED>4</QTYFILLED>
  </ITEM>
</INVENTORY>`

	p := New()
	result, err := p.ParseBytes([]byte(data), "clean")
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}
