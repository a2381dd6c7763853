package movement

import (
	"strconv"
	"strings"
	"time"

	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AddMovementRequest struct {
	Product      string `form:"product"`
	FromLocation string `form:"from_location"` // optional
	ToLocation   string `form:"to_location"`   // optional
	Qty          string `form:"qty"`
}

type MovementRow struct {
	ID        uint
	Timestamp time.Time
	From      string
	To        string
	Product   string
	Qty       int
}

// GET /movement/add
func AddFormHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}

		var locations []models.Location
		if err := db.Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list locations")
		}

		return c.Render("add_movement", fiber.Map{
			"Products":  products,
			"Locations": locations,
		})
	}
}

// POST /movement/add
//
// Free-form ledger entry: from/to are optional and the quantity is not
// checked against real stock. The product row itself is never touched.
func AddHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddMovementRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}

		productID, err := strconv.ParseUint(strings.TrimSpace(body.Product), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "A product must be selected")
		}
		var p models.Product
		if err := db.First(&p, "id = ?", productID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		qty, err := strconv.Atoi(strings.TrimSpace(body.Qty))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must be an integer")
		}

		fromID, err := parseOptionalID(body.FromLocation)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from-location")
		}
		toID, err := parseOptionalID(body.ToLocation)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid to-location")
		}

		m := models.ProductMovement{
			Timestamp:      time.Now(),
			FromLocationID: fromID,
			ToLocationID:   toID,
			ProductID:      p.ID,
			Qty:            qty,
		}
		if err := db.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record movement")
		}

		return c.Redirect("/movement/view")
	}
}

// GET /movement/view
func ViewHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var movements []models.ProductMovement
		err := db.Preload("FromLocation").Preload("ToLocation").Preload("Product").
			Order("timestamp desc, id asc"). // newest first, insertion order on ties
			Find(&movements).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list movements")
		}

		rows := make([]MovementRow, 0, len(movements))
		for _, m := range movements {
			rows = append(rows, MovementRow{
				ID:        m.ID,
				Timestamp: m.Timestamp,
				From:      locationName(m.FromLocation),
				To:        locationName(m.ToLocation),
				Product:   m.Product.Name,
				Qty:       m.Qty,
			})
		}

		return c.Render("view_movement", fiber.Map{"Movements": rows})
	}
}

func parseOptionalID(s string) (*uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(v)
	return &id, nil
}

func locationName(loc *models.Location) string {
	if loc == nil {
		return "N/A"
	}
	return loc.Name
}
