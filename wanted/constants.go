package wanted

// ItemType is the one-letter BrickLink item type code
type ItemType string

const (
	// ItemTypeSet is a boxed set
	ItemTypeSet ItemType = "S"
	// ItemTypePart is a single part
	ItemTypePart ItemType = "P"
	// ItemTypeMinifig is a minifigure
	ItemTypeMinifig ItemType = "M"
	// ItemTypeBook is a book
	ItemTypeBook ItemType = "B"
	// ItemTypeGear is gear (keychains, clocks, etc.)
	ItemTypeGear ItemType = "G"
	// ItemTypeCatalog is a catalog
	ItemTypeCatalog ItemType = "C"
	// ItemTypeInstruction is an instruction booklet
	ItemTypeInstruction ItemType = "I"
	// ItemTypeOriginalBox is an original box
	ItemTypeOriginalBox ItemType = "O"
	// ItemTypeUnsortedLot is an unsorted lot
	ItemTypeUnsortedLot ItemType = "U"
)

// ValidItemTypes returns all valid item type codes
func ValidItemTypes() []string {
	return []string{
		string(ItemTypeSet),
		string(ItemTypePart),
		string(ItemTypeMinifig),
		string(ItemTypeBook),
		string(ItemTypeGear),
		string(ItemTypeCatalog),
		string(ItemTypeInstruction),
		string(ItemTypeOriginalBox),
		string(ItemTypeUnsortedLot),
	}
}

// IsValidItemType checks if an item type code is valid
func IsValidItemType(code string) bool {
	switch ItemType(code) {
	case ItemTypeSet, ItemTypePart, ItemTypeMinifig, ItemTypeBook, ItemTypeGear,
		ItemTypeCatalog, ItemTypeInstruction, ItemTypeOriginalBox, ItemTypeUnsortedLot:
		return true
	default:
		return false
	}
}

// Condition is the one-letter BrickLink item condition code
type Condition string

const (
	// ConditionNew is a new item
	ConditionNew Condition = "N"
	// ConditionUsed is a used item
	ConditionUsed Condition = "U"
	// ConditionComplete is a complete set
	ConditionComplete Condition = "C"
	// ConditionIncomplete is an incomplete set
	ConditionIncomplete Condition = "I"
	// ConditionSealed is a sealed set
	ConditionSealed Condition = "S"
	// ConditionNotProvided indicates no condition preference
	ConditionNotProvided Condition = "X"
)

// IsValidCondition checks if a condition code is valid
func IsValidCondition(code string) bool {
	switch Condition(code) {
	case ConditionNew, ConditionUsed, ConditionComplete,
		ConditionIncomplete, ConditionSealed, ConditionNotProvided:
		return true
	default:
		return false
	}
}

// Notify is the Y/N flag requesting listing notifications
type Notify string

const (
	// NotifyYes requests notification when matching items are listed
	NotifyYes Notify = "Y"
	// NotifyNo declines listing notifications
	NotifyNo Notify = "N"
)

// IsValidNotify checks if a notify flag is valid
func IsValidNotify(code string) bool {
	return Notify(code) == NotifyYes || Notify(code) == NotifyNo
}

// WantedShow is the Y/N flag controlling visibility in items-for-sale queries
type WantedShow string

const (
	// WantedShowYes shows the entry in items-for-sale queries
	WantedShowYes WantedShow = "Y"
	// WantedShowNo hides the entry from items-for-sale queries
	WantedShowNo WantedShow = "N"
)

// IsValidWantedShow checks if a wanted-show flag is valid
func IsValidWantedShow(code string) bool {
	return WantedShow(code) == WantedShowYes || WantedShow(code) == WantedShowNo
}
