package wanted

import "strconv"

// Item is a single wanted-list entry (one "lot" in BrickLink terms).
// Required fields are plain values; optional fields are pointers and stay
// nil when the source document omits them so they round-trip unchanged.
type Item struct {
	// ItemType is the one-letter BrickLink item type code (required)
	ItemType ItemType
	// ItemID is the canonical catalog item number (required)
	ItemID string
	// Color is the BrickLink color code, or nil when the entry is
	// color-agnostic (e.g. instructions, sets)
	Color *int
	// MaxPrice is the maximum desired price, serialized with two decimals
	MaxPrice *float64
	// MinQty is the minimum desired quantity. BrickLink treats an absent
	// quantity as 1; use EffectiveQty for aggregation.
	MinQty *int
	// QtyFilled is the quantity already owned
	QtyFilled *int
	// Condition is the desired item condition code
	Condition *Condition
	// Remarks holds free-form notes on the entry
	Remarks *string
	// Notify requests notification when matching items are listed
	Notify *Notify
	// WantedShow controls visibility in items-for-sale queries
	WantedShow *WantedShow
	// WantedListID is the target wanted-list identifier
	WantedListID *string
}

// ItemKey is the primary key of an Item within a document: the exact
// (ItemID, Color) pair. Color equality is exact-value on the integer code
// as deserialized; an entry without a color only matches other entries
// without a color.
type ItemKey struct {
	ItemID   string
	Color    int
	HasColor bool
}

// String renders the key in "itemID/color" display form, with "-" for
// entries that carry no color.
func (k ItemKey) String() string {
	if !k.HasColor {
		return k.ItemID + "/-"
	}
	return k.ItemID + "/" + strconv.Itoa(k.Color)
}

// Key returns the item's ItemKey.
func (i *Item) Key() ItemKey {
	k := ItemKey{ItemID: i.ItemID}
	if i.Color != nil {
		k.Color = *i.Color
		k.HasColor = true
	}
	return k
}

// EffectiveQty returns the quantity the entry contributes to aggregates:
// MinQty when present, otherwise 1 (the BrickLink default).
func (i *Item) EffectiveQty() int {
	if i.MinQty != nil {
		return *i.MinQty
	}
	return 1
}

// Clone returns a deep copy of the item. Pointer fields are re-allocated so
// the copy shares no mutable state with the original.
func (i *Item) Clone() Item {
	out := Item{
		ItemType: i.ItemType,
		ItemID:   i.ItemID,
	}
	out.Color = clonePtr(i.Color)
	out.MaxPrice = clonePtr(i.MaxPrice)
	out.MinQty = clonePtr(i.MinQty)
	out.QtyFilled = clonePtr(i.QtyFilled)
	out.Condition = clonePtr(i.Condition)
	out.Remarks = clonePtr(i.Remarks)
	out.Notify = clonePtr(i.Notify)
	out.WantedShow = clonePtr(i.WantedShow)
	out.WantedListID = clonePtr(i.WantedListID)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// WantedList is a wanted-list document: an ordered sequence of items.
// Entry order is significant and preserved through parse, merge, and
// serialization.
type WantedList struct {
	Items []Item
}

// Clone returns a deep copy of the list.
func (l *WantedList) Clone() *WantedList {
	if l == nil {
		return nil
	}
	out := &WantedList{Items: make([]Item, len(l.Items))}
	for i := range l.Items {
		out.Items[i] = l.Items[i].Clone()
	}
	return out
}

// Ptr returns a pointer to v. It is a convenience for building items with
// optional fields:
//
//	item := wanted.Item{
//	    ItemType: wanted.ItemTypePart,
//	    ItemID:   "3001",
//	    Color:    wanted.Ptr(5),
//	    MinQty:   wanted.Ptr(100),
//	}
func Ptr[T any](v T) *T {
	return &v
}
