package location

import (
	"net/url"
	"strings"

	"inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationForm struct {
	Name string `form:"name"`
}

// GET /location/manage
func ManageHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var locations []models.Location
		if err := db.Find(&locations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list locations")
		}

		return c.Render("locations", fiber.Map{
			"Locations": locations,
			"Error":     c.Query("error"),
		})
	}
}

// GET /location/add
func AddFormHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("add_location", fiber.Map{"Name": ""})
	}
}

// POST /location/add
func AddHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form LocationForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(form.Name)
		if name == "" {
			return c.Status(fiber.StatusBadRequest).Render("add_location", fiber.Map{
				"Error": "Location name cannot be empty",
				"Name":  "",
			})
		}

		// Case-sensitive exact match, checked before the unique constraint
		// so the user gets a message instead of a raw constraint error.
		var exist models.Location
		if err := db.Where("name = ?", name).First(&exist).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).Render("add_location", fiber.Map{
				"Error": "A location named \"" + name + "\" already exists",
				"Name":  name,
			})
		}

		loc := models.Location{Name: name}
		if err := db.Create(&loc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create location")
		}

		return c.Redirect("/location/manage")
	}
}

// GET /location/edit/:id
func EditFormHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var loc models.Location
		if err := db.First(&loc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}

		return c.Render("edit_location", fiber.Map{"Location": loc})
	}
}

// POST /location/edit/:id
func EditHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var loc models.Location
		if err := db.First(&loc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}

		var form LocationForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(form.Name)
		if name == "" {
			return c.Status(fiber.StatusBadRequest).Render("edit_location", fiber.Map{
				"Location": loc,
				"Error":    "Location name cannot be empty",
			})
		}

		// Renaming to the current name is a no-op update, only other rows count.
		var exist models.Location
		if err := db.Where("name = ? AND id <> ?", name, loc.ID).First(&exist).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).Render("edit_location", fiber.Map{
				"Location": loc,
				"Error":    "A location named \"" + name + "\" already exists",
			})
		}

		loc.Name = name
		if err := db.Save(&loc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update location")
		}

		return c.Redirect("/location/manage")
	}
}

// POST /location/delete/:id
func DeleteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var loc models.Location
		if err := db.First(&loc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Location not found")
		}

		// Only current ownership blocks deletion; movement history does not.
		var count int64
		if err := db.Model(&models.Product{}).Where("location_id = ?", loc.ID).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check location usage")
		}
		if count > 0 {
			msg := "Cannot delete \"" + loc.Name + "\": products are still stocked there"
			return c.Redirect("/location/manage?error=" + url.QueryEscape(msg))
		}

		if err := db.Delete(&loc).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).
				SendString("Error deleting location: " + err.Error())
		}

		return c.Redirect("/location/manage")
	}
}
