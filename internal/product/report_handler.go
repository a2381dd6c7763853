package product

import (
	"sort"

	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportItem struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

type ReportGroup struct {
	Location string
	Items    []ReportItem
}

// GET /product/report
//
// Current stock grouped by resolved location name. Groups are sorted by
// name with "N/A" last; rows keep product insertion order. Read-only.
func ReportHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := db.Preload("Location").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}

		byLocation := make(map[string][]ReportItem)
		for _, p := range products {
			name := p.LocationName()
			byLocation[name] = append(byLocation[name], ReportItem{
				Name:     p.Name,
				Quantity: p.Quantity,
				Price:    p.Price,
			})
		}

		groups := make([]ReportGroup, 0, len(byLocation))
		for loc, items := range byLocation {
			groups = append(groups, ReportGroup{Location: loc, Items: items})
		}
		sort.Slice(groups, func(i, j int) bool {
			if groups[i].Location == "N/A" {
				return false
			}
			if groups[j].Location == "N/A" {
				return true
			}
			return groups[i].Location < groups[j].Location
		})

		return c.Render("report", fiber.Map{"Groups": groups})
	}
}
