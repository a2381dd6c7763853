package product

import (
	"strconv"
	"strings"
	"time"

	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRow struct {
	ID       uint
	Index    int // 1-based display ordering
	Name     string
	Price    decimal.Decimal
	Quantity int
	Location string
}

type AddProductRequest struct {
	Name     string `form:"name"`
	Price    string `form:"price"`
	Quantity string `form:"quantity"`
	Location string `form:"location"` // location id
}

type ShiftProductRequest struct {
	NewLocation string `form:"new_location"` // location id
}

// GET /
func IndexHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := db.Preload("Location").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}

		rows := make([]ProductRow, 0, len(products))
		for i, p := range products {
			rows = append(rows, ProductRow{
				ID:       p.ID,
				Index:    i + 1,
				Name:     p.Name,
				Price:    p.Price,
				Quantity: p.Quantity,
				Location: p.LocationName(),
			})
		}

		return c.Render("index", fiber.Map{"Products": rows})
	}
}

// GET /product/add
func AddFormHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var locations []models.Location
		if err := db.Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list locations")
		}

		return c.Render("add_product", fiber.Map{"Locations": locations})
	}
}

// POST /product/add
//
// Merge semantics: a product exactly matching (name, price, location) is
// treated as the same stock, so its quantity is incremented instead of a
// second row being created.
func AddHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}

		renderError := func(msg string) error {
			var locations []models.Location
			if err := db.Find(&locations).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not list locations")
			}
			return c.Status(fiber.StatusBadRequest).Render("add_product", fiber.Map{
				"Locations": locations,
				"Error":     msg,
			})
		}

		name := strings.TrimSpace(body.Name)
		if name == "" {
			return renderError("Product name cannot be empty")
		}

		price, err := decimal.NewFromString(strings.TrimSpace(body.Price))
		if err != nil || price.IsNegative() {
			return renderError("Price must be a non-negative number")
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(body.Quantity))
		if err != nil || quantity < 0 {
			return renderError("Quantity must be a non-negative integer")
		}

		locationID, err := strconv.ParseUint(strings.TrimSpace(body.Location), 10, 32)
		if err != nil {
			return renderError("A location must be selected")
		}
		var loc models.Location
		if err := db.First(&loc, "id = ?", locationID).Error; err != nil {
			return renderError("Location not found")
		}

		var existing models.Product
		err = db.Where("name = ? AND price = ? AND location_id = ?", name, price, loc.ID).
			First(&existing).Error
		if err == nil {
			existing.Quantity += quantity
			if err := db.Save(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update product")
			}
			return c.Redirect("/")
		}

		p := models.Product{
			Name:       name,
			Price:      price,
			Quantity:   quantity,
			LocationID: &loc.ID,
		}
		if err := db.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create product")
		}

		return c.Redirect("/")
	}
}

// GET /product/shift/:id
func ShiftFormHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := db.Preload("Location").First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var locations []models.Location
		if err := db.Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list locations")
		}

		return c.Render("shift_product", fiber.Map{
			"Product":      p,
			"LocationName": p.LocationName(),
			"Locations":    locations,
		})
	}
}

// POST /product/shift/:id
//
// Relocates the product and appends exactly one movement row
// {from: old location, to: new location, qty: quantity at shift time}.
// Both writes share one transaction so a movement row never goes missing
// for a committed relocation.
func ShiftHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body ShiftProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}

		newID64, err := strconv.ParseUint(strings.TrimSpace(body.NewLocation), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "A new location must be selected")
		}
		newID := uint(newID64)

		var loc models.Location
		if err := db.First(&loc, "id = ?", newID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Location not found")
		}

		oldLocationID := p.LocationID
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&p).Update("location_id", newID).Error; err != nil {
				return err
			}
			movement := models.ProductMovement{
				Timestamp:      time.Now(),
				FromLocationID: oldLocationID,
				ToLocationID:   &newID,
				ProductID:      p.ID,
				Qty:            p.Quantity,
			}
			return tx.Create(&movement).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not shift product")
		}

		return c.Redirect("/")
	}
}

// POST /product/delete/:id
//
// Deletes the product together with all its movement rows in one
// transaction; any failure rolls back both.
func DeleteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", p.ID).Delete(&models.ProductMovement{}).Error; err != nil {
				return err
			}
			return tx.Delete(&p).Error
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				SendString("Error deleting product: " + err.Error())
		}

		return c.Redirect("/")
	}
}
