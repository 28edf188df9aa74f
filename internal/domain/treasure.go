package domain

// Treasure is rendered with either ShopName (list, joined) or ShopID
// (create, raw row), never both.
type Treasure struct {
	TreasureID    uint    `json:"treasure_id"`
	TreasureName  string  `json:"treasure_name"`
	Colour        string  `json:"colour"`
	Age           int     `json:"age"`
	CostAtAuction float64 `json:"cost_at_auction"`
	ShopID        uint    `json:"shop_id,omitempty"`
	ShopName      string  `json:"shop_name,omitempty"`
}
