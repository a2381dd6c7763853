package models

import "time"

// ProductMovement: append-only transfer record. Written by the shift flow
// and by manual movement entry, never updated afterwards. Rows are removed
// only when their product is deleted.
type ProductMovement struct {
	ID             uint      `gorm:"primaryKey"`
	Timestamp      time.Time `gorm:"index;not null"`
	FromLocationID *uint
	FromLocation   *Location
	ToLocationID   *uint
	ToLocation     *Location
	ProductID      uint `gorm:"index;not null"`
	Product        Product
	Qty            int `gorm:"not null"`
	CreatedAt      time.Time
}
