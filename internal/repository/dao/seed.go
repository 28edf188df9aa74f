package dao

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed resets both tables to the fixture state: 11 shops and 26 treasures.
// Sequences are advanced past the seeded ids so the next insert gets a
// fresh id (27 for treasures).
func Seed(db *gorm.DB) error {
	shops := []Shop{
		{ShopID: 1, ShopName: "Gilded Gannet", Slogan: "Treasure beyond measure"},
		{ShopID: 2, ShopName: "Rust & Relic", Slogan: "Old things, new homes"},
		{ShopID: 3, ShopName: "The Brass Compass", Slogan: "Navigate to a bargain"},
		{ShopID: 4, ShopName: "Curio Corner", Slogan: "Every shelf a story"},
		{ShopID: 5, ShopName: "Harbour Hoard", Slogan: "Washed up, priced down"},
		{ShopID: 6, ShopName: "The Velvet Vault", Slogan: "Luxury, gently aged"},
		{ShopID: 7, ShopName: "Attic & Anchor", Slogan: "From attic to heirloom"},
		{ShopID: 8, ShopName: "Penny Farthing Antiques", Slogan: "A penny saved is a relic earned"},
		{ShopID: 9, ShopName: "The Crooked Cabinet", Slogan: "Straight deals only"},
		{ShopID: 10, ShopName: "Molly's Marvels", Slogan: "Marvellous, simply marvellous"},
		// Shop 11 deliberately has no treasures.
		{ShopID: 11, ShopName: "Driftwood Dealers", Slogan: "Fresh from the tide"},
	}

	treasures := []Treasure{
		{TreasureID: 1, TreasureName: "Victorian Tea Set", Colour: "silver", Age: 120, CostAtAuction: 20.00, ShopID: 1},
		{TreasureID: 2, TreasureName: "Brass Pocket Watch", Colour: "gold", Age: 95, CostAtAuction: 149.99, ShopID: 1},
		{TreasureID: 3, TreasureName: "Ivory Chess Set", Colour: "white", Age: 210, CostAtAuction: 300.00, ShopID: 2},
		{TreasureID: 4, TreasureName: "Ming Vase Replica", Colour: "azure", Age: 40, CostAtAuction: 75.50, ShopID: 2},
		{TreasureID: 5, TreasureName: "Pirate Doubloon", Colour: "gold", Age: 310, CostAtAuction: 450.00, ShopID: 3},
		{TreasureID: 6, TreasureName: "Silver Locket", Colour: "silver", Age: 150, CostAtAuction: 65.25, ShopID: 3},
		{TreasureID: 7, TreasureName: "Grandfather Clock", Colour: "mahogany", Age: 180, CostAtAuction: 525.00, ShopID: 4},
		{TreasureID: 8, TreasureName: "Jade Figurine", Colour: "emerald", Age: 260, CostAtAuction: 380.75, ShopID: 4},
		{TreasureID: 9, TreasureName: "Copper Diving Helmet", Colour: "copper", Age: 88, CostAtAuction: 215.00, ShopID: 5},
		{TreasureID: 10, TreasureName: "Ship in a Bottle", Colour: "azure", Age: 64, CostAtAuction: 49.99, ShopID: 5},
		{TreasureID: 11, TreasureName: "Persian Rug", Colour: "burgundy", Age: 135, CostAtAuction: 610.00, ShopID: 6},
		{TreasureID: 12, TreasureName: "Opera Glasses", Colour: "gold", Age: 101, CostAtAuction: 88.40, ShopID: 6},
		{TreasureID: 13, TreasureName: "Tin Toy Robot", Colour: "silver", Age: 68, CostAtAuction: 120.00, ShopID: 7},
		{TreasureID: 14, TreasureName: "Gramophone", Colour: "oak", Age: 110, CostAtAuction: 240.00, ShopID: 7},
		{TreasureID: 15, TreasureName: "Porcelain Doll", Colour: "ivory", Age: 130, CostAtAuction: 55.55, ShopID: 8},
		{TreasureID: 16, TreasureName: "Cavalry Sabre", Colour: "steel", Age: 205, CostAtAuction: 333.00, ShopID: 8},
		{TreasureID: 17, TreasureName: "Stained Glass Lamp", Colour: "amber", Age: 99, CostAtAuction: 199.99, ShopID: 9},
		{TreasureID: 18, TreasureName: "Astrolabe", Colour: "brass", Age: 320, CostAtAuction: 720.00, ShopID: 9},
		{TreasureID: 19, TreasureName: "Snuff Box", Colour: "silver", Age: 175, CostAtAuction: 42.50, ShopID: 10},
		{TreasureID: 20, TreasureName: "Map of the Indies", Colour: "sepia", Age: 290, CostAtAuction: 155.00, ShopID: 10},
		{TreasureID: 21, TreasureName: "Emerald Brooch", Colour: "emerald", Age: 82, CostAtAuction: 265.80, ShopID: 1},
		{TreasureID: 22, TreasureName: "Whale Bone Corset", Colour: "ivory", Age: 160, CostAtAuction: 95.00, ShopID: 2},
		{TreasureID: 23, TreasureName: "Clockwork Canary", Colour: "gold", Age: 77, CostAtAuction: 180.25, ShopID: 3},
		{TreasureID: 24, TreasureName: "Duelling Pistols", Colour: "ebony", Age: 230, CostAtAuction: 540.00, ShopID: 4},
		{TreasureID: 25, TreasureName: "Samovar", Colour: "copper", Age: 140, CostAtAuction: 130.60, ShopID: 5},
		{TreasureID: 26, TreasureName: "Harpsichord Miniature", Colour: "walnut", Age: 55, CostAtAuction: 310.99, ShopID: 6},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE treasures, shops RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate tables -> %w", err)
		}

		if err := tx.Create(&shops).Error; err != nil {
			return fmt.Errorf("failed to seed shops -> %w", err)
		}

		if err := tx.Omit(clause.Associations).Create(&treasures).Error; err != nil {
			return fmt.Errorf("failed to seed treasures -> %w", err)
		}

		// Explicit ids bypass the sequences, so bump them by hand.
		if err := tx.Exec("SELECT setval(pg_get_serial_sequence('shops', 'shop_id'), ?)", len(shops)).Error; err != nil {
			return fmt.Errorf("failed to advance shops sequence -> %w", err)
		}
		if err := tx.Exec("SELECT setval(pg_get_serial_sequence('treasures', 'treasure_id'), ?)", len(treasures)).Error; err != nil {
			return fmt.Errorf("failed to advance treasures sequence -> %w", err)
		}

		return nil
	})
}
