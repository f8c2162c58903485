package wanted

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/bricktools/bricktools/blerrors"
)

// xmlHeader is the declaration BrickLink emits on exported wanted lists.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// xmlInventory is the wire representation of a wanted-list document.
// BrickLink uses upper-case tag names throughout.
type xmlInventory struct {
	XMLName xml.Name  `xml:"INVENTORY"`
	Items   []xmlItem `xml:"ITEM"`
}

// xmlItem is the wire representation of a single entry. All optional fields
// are pointers so that absent elements stay absent on round-trip.
type xmlItem struct {
	ItemType     string  `xml:"ITEMTYPE"`
	ItemID       string  `xml:"ITEMID"`
	Color        *int    `xml:"COLOR,omitempty"`
	MaxPrice     *string `xml:"MAXPRICE,omitempty"`
	MinQty       *int    `xml:"MINQTY,omitempty"`
	QtyFilled    *int    `xml:"QTYFILLED,omitempty"`
	Condition    *string `xml:"CONDITION,omitempty"`
	Remarks      *string `xml:"REMARKS,omitempty"`
	Notify       *string `xml:"NOTIFY,omitempty"`
	WantedShow   *string `xml:"WANTEDSHOW,omitempty"`
	WantedListID *string `xml:"WANTEDLISTID,omitempty"`
}

// itemFromWire converts a wire entry to the typed model, validating codes
// and numeric constraints. The index and path feed error messages.
func itemFromWire(w xmlItem, index int, path string) (Item, error) {
	var item Item

	if w.ItemType == "" {
		return item, parseErrorf(path, "entry %d: missing required ITEMTYPE", index)
	}
	if !IsValidItemType(w.ItemType) {
		return item, parseErrorf(path, "entry %d: %q is not a valid ITEMTYPE (valid: %v)", index, w.ItemType, ValidItemTypes())
	}
	if w.ItemID == "" {
		return item, parseErrorf(path, "entry %d: missing required ITEMID", index)
	}

	item.ItemType = ItemType(w.ItemType)
	item.ItemID = w.ItemID
	item.Color = clonePtr(w.Color)

	if w.MaxPrice != nil {
		price, err := strconv.ParseFloat(*w.MaxPrice, 64)
		if err != nil {
			return item, parseErrorf(path, "entry %d: invalid MAXPRICE %q", index, *w.MaxPrice)
		}
		item.MaxPrice = &price
	}
	if w.MinQty != nil {
		if *w.MinQty < 0 {
			return item, parseErrorf(path, "entry %d: MINQTY must be non-negative, got %d", index, *w.MinQty)
		}
		item.MinQty = clonePtr(w.MinQty)
	}
	if w.QtyFilled != nil {
		if *w.QtyFilled < 0 {
			return item, parseErrorf(path, "entry %d: QTYFILLED must be non-negative, got %d", index, *w.QtyFilled)
		}
		item.QtyFilled = clonePtr(w.QtyFilled)
	}
	if w.Condition != nil {
		if !IsValidCondition(*w.Condition) {
			return item, parseErrorf(path, "entry %d: %q is not a valid CONDITION", index, *w.Condition)
		}
		c := Condition(*w.Condition)
		item.Condition = &c
	}
	item.Remarks = clonePtr(w.Remarks)
	if w.Notify != nil {
		if !IsValidNotify(*w.Notify) {
			return item, parseErrorf(path, "entry %d: %q is not a valid NOTIFY flag", index, *w.Notify)
		}
		n := Notify(*w.Notify)
		item.Notify = &n
	}
	if w.WantedShow != nil {
		if !IsValidWantedShow(*w.WantedShow) {
			return item, parseErrorf(path, "entry %d: %q is not a valid WANTEDSHOW flag", index, *w.WantedShow)
		}
		s := WantedShow(*w.WantedShow)
		item.WantedShow = &s
	}
	item.WantedListID = clonePtr(w.WantedListID)

	return item, nil
}

// itemToWire converts a typed entry back to its wire form.
func itemToWire(item *Item) xmlItem {
	w := xmlItem{
		ItemType: string(item.ItemType),
		ItemID:   item.ItemID,
		Color:    clonePtr(item.Color),
	}
	if item.MaxPrice != nil {
		// BrickLink renders prices with two decimals
		s := fmt.Sprintf("%.2f", *item.MaxPrice)
		w.MaxPrice = &s
	}
	w.MinQty = clonePtr(item.MinQty)
	w.QtyFilled = clonePtr(item.QtyFilled)
	if item.Condition != nil {
		s := string(*item.Condition)
		w.Condition = &s
	}
	w.Remarks = clonePtr(item.Remarks)
	if item.Notify != nil {
		s := string(*item.Notify)
		w.Notify = &s
	}
	if item.WantedShow != nil {
		s := string(*item.WantedShow)
		w.WantedShow = &s
	}
	w.WantedListID = clonePtr(item.WantedListID)
	return w
}

// unmarshalList decodes a wanted-list document from XML bytes.
// The path names the source in error messages.
func unmarshalList(data []byte, path string) (*WantedList, error) {
	var inv xmlInventory
	if err := xml.Unmarshal(data, &inv); err != nil {
		return nil, &blerrors.ParseError{Path: path, Message: "malformed XML", Cause: err}
	}

	list := &WantedList{Items: make([]Item, 0, len(inv.Items))}
	for i, w := range inv.Items {
		item, err := itemFromWire(w, i, path)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}

// MarshalList serializes a wanted-list document to BrickLink XML, preserving
// entry order and every populated field verbatim. Output is deterministic:
// the same list always produces identical bytes.
func MarshalList(list *WantedList) ([]byte, error) {
	inv := xmlInventory{Items: make([]xmlItem, 0, len(list.Items))}
	for i := range list.Items {
		inv.Items = append(inv.Items, itemToWire(&list.Items[i]))
	}

	body, err := xml.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("wanted: marshaling list: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(xmlHeader) + len(body) + 2)
	buf.WriteString(xmlHeader)
	buf.WriteByte('\n')
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func parseErrorf(path, format string, args ...any) error {
	return &blerrors.ParseError{Path: path, Message: fmt.Sprintf(format, args...)}
}
