package domain

// Shop carries StockValue only when the shop has at least one treasure.
// The JSON key keeps the space from the original API contract.
type Shop struct {
	ShopID     uint     `json:"shop_id"`
	ShopName   string   `json:"shop_name"`
	Slogan     string   `json:"slogan"`
	StockValue *float64 `json:"stock value,omitempty"`
}

// ShopStock is one row of the summed auction costs grouped by shop.
type ShopStock struct {
	ShopID     uint
	StockValue float64
}
