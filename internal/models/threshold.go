package models

// Threshold holds the stock bounds configured for an item name.
// There is no link to an existing item and no min <= max check.
type Threshold struct {
	ItemName string `json:"item_name" db:"item_name"`
	Min      int    `json:"min" db:"min_threshold"`
	Max      int    `json:"max" db:"max_threshold"`
}

// Bounds is the value side of the thresholds map keyed by item name.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
