package main

import (
	"log"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/location"
	"inventory-backend/internal/movement"
	"inventory-backend/internal/product"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg)

	engine := html.New(cfg.ViewsDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).SendString(e.Message)
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).
				SendString("Unexpected server error")
		},
	})

	app.Use(logger.New())

	// Products
	app.Get("/", product.IndexHandler(db))
	app.Get("/product/add", product.AddFormHandler(db))
	app.Post("/product/add", product.AddHandler(db))
	app.Get("/product/shift/:id", product.ShiftFormHandler(db))
	app.Post("/product/shift/:id", product.ShiftHandler(db))
	app.Post("/product/delete/:id", product.DeleteHandler(db))
	app.Get("/product/report", product.ReportHandler(db))

	// Movements
	app.Get("/movement/add", movement.AddFormHandler(db))
	app.Post("/movement/add", movement.AddHandler(db))
	app.Get("/movement/view", movement.ViewHandler(db))

	// Locations
	app.Get("/location/manage", location.ManageHandler(db))
	app.Get("/location/add", location.AddFormHandler())
	app.Post("/location/add", location.AddHandler(db))
	app.Get("/location/edit/:id", location.EditFormHandler(db))
	app.Post("/location/edit/:id", location.EditHandler(db))
	app.Post("/location/delete/:id", location.DeleteHandler(db))

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
