package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:100;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity   int             `gorm:"not null"`
	LocationID *uint           `gorm:"index"` // nullable, product may be unassigned
	Location   *Location
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LocationName resolves the current location for display.
// Returns "N/A" when the reference is absent or broken.
func (p *Product) LocationName() string {
	if p.LocationID == nil || p.Location == nil {
		return "N/A"
	}
	return p.Location.Name
}
