package model

import (
	"encoding/json"

	"dinoledger/internal/ledger"
)

// Category is the kind of tracked object.
type Category string

const (
	CategoryCreature Category = "Creature"
	CategorySpecies  Category = "Species"
	CategoryToken    Category = "Token"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryCreature, CategorySpecies, CategoryToken}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// legacyCategories maps labels found in older data files to their category.
var legacyCategories = map[string]Category{
	"Créature": CategoryCreature,
	"Espèce":   CategorySpecies,
}

// UnmarshalJSON accepts legacy labels so older data files stay editable.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if known, ok := legacyCategories[s]; ok {
		*c = known
		return nil
	}
	*c = Category(s)
	return nil
}

// Item is one ledger row: a purchase of Quantity units and their planned sale.
// JSON keys match the historical data file layout.
type Item struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	Category      Category  `json:"dino_type" gorm:"column:dino_type;type:varchar(20);not null;index"`
	PurchasePrice float64   `json:"purchase_price" gorm:"not null"`
	SellPrice     float64   `json:"sell_price" gorm:"not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	TaxRate       float64   `json:"tax_rate" gorm:"not null"` // Fraction in [0,1]
	Notes         string    `json:"notes" gorm:"type:text"`
	OwnerID       int       `json:"user_id" gorm:"column:user_id;not null;index"`
	CreatedAt     Timestamp `json:"created_at" gorm:"type:datetime(6)"`
}

// TableName keeps the SQL table aligned with the document key.
func (Item) TableName() string {
	return "dinos"
}

// LedgerInput extracts the fields the calculator needs.
func (i Item) LedgerInput() ledger.Input {
	return ledger.Input{
		PurchasePrice: i.PurchasePrice,
		SellPrice:     i.SellPrice,
		Quantity:      i.Quantity,
		TaxRate:       i.TaxRate,
	}
}

// Derived computes the item's unrounded derived values.
func (i Item) Derived() ledger.Figures {
	return ledger.Compute(i.LedgerInput())
}
