package location_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/location"
	"inventory-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{Views: html.New("../../views", ".html")})
	app.Get("/location/manage", location.ManageHandler(db))
	app.Get("/location/add", location.AddFormHandler())
	app.Post("/location/add", location.AddHandler(db))
	app.Get("/location/edit/:id", location.EditFormHandler(db))
	app.Post("/location/edit/:id", location.EditHandler(db))
	app.Post("/location/delete/:id", location.DeleteHandler(db))
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAddLocation(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := postForm(t, app, "/location/add", url.Values{"name": {"Chennai"}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var loc models.Location
	require.NoError(t, db.Where("name = ?", "Chennai").First(&loc).Error)
}

func TestAddLocationDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := postForm(t, app, "/location/add", url.Values{"name": {"Chennai"}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp = postForm(t, app, "/location/add", url.Values{"name": {"Chennai"}})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddLocationEmptyNameRejected(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := postForm(t, app, "/location/add", url.Values{"name": {"   "}})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestRenameLocationToOtherNameRejected(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	a := models.Location{Name: "Chennai"}
	b := models.Location{Name: "Madurai"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	resp := postForm(t, app, "/location/edit/"+itoa(a.ID), url.Values{"name": {"Madurai"}})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var fresh models.Location
	require.NoError(t, db.First(&fresh, a.ID).Error)
	require.Equal(t, "Chennai", fresh.Name)
}

func TestRenameLocationToOwnNameSucceeds(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	a := models.Location{Name: "Chennai"}
	require.NoError(t, db.Create(&a).Error)

	resp := postForm(t, app, "/location/edit/"+itoa(a.ID), url.Values{"name": {"Chennai"}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var fresh models.Location
	require.NoError(t, db.First(&fresh, a.ID).Error)
	require.Equal(t, "Chennai", fresh.Name)
}

func TestRenameLocationNotFound(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := postForm(t, app, "/location/edit/9999", url.Values{"name": {"Salem"}})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteLocationWithProductsRejected(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	loc := models.Location{Name: "Chennai"}
	require.NoError(t, db.Create(&loc).Error)
	p := models.Product{Name: "Widget", Quantity: 5, LocationID: &loc.ID}
	require.NoError(t, db.Create(&p).Error)

	resp := postForm(t, app, "/location/delete/"+itoa(loc.ID), nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	redirect := resp.Header.Get("Location")
	require.Contains(t, redirect, "/location/manage?error=")

	// Both the location and its product must be unchanged.
	var locCount, prodCount int64
	require.NoError(t, db.Model(&models.Location{}).Count(&locCount).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&prodCount).Error)
	require.EqualValues(t, 1, locCount)
	require.EqualValues(t, 1, prodCount)
}

func TestDeleteUnusedLocation(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	loc := models.Location{Name: "Salem"}
	require.NoError(t, db.Create(&loc).Error)

	resp := postForm(t, app, "/location/delete/"+itoa(loc.ID), nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Location{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteLocationNotFound(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	resp := postForm(t, app, "/location/delete/9999", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestManagePageShowsLocations(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	require.NoError(t, db.Create(&models.Location{Name: "Trichy"}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/location/manage", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	require.Contains(t, body, "Trichy")
}
