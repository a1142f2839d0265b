package zones

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupZonesRoutes(app *fiber.App) {
	pages := app.Group("/jera/zones")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	pages.Get("/", ZonesPage)
	pages.Post("/", CreateZonePage)
	pages.Post("/:id/edit", EditZonePage)
	pages.Post("/:id/delete", DeleteZonePage)

	api := app.Group("/api/zones")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	api.Get("/", GetZonesAPI)
	api.Post("/", CreateZoneAPI)
	api.Put("/:id", UpdateZoneAPI)
	api.Delete("/:id", DeleteZoneAPI)
}

func ZonesPage(c *fiber.Ctx) error {
	zones, err := database.GetAllZones(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load zones")
	}

	return c.Render("zones/index", fiber.Map{
		"Title":       "Zones - JERA EMS",
		"CurrentPage": "zones",
		"admin":       c.Locals("admin"),
		"zones":       zones,
		"Error":       c.Query("error"),
		"Message":     c.Query("message"),
	})
}

func CreateZonePage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Redirect("/jera/zones?error=Zone+name+is+required")
	}

	if _, err := database.CreateZone(config.GetDB(), name); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Redirect("/jera/zones?error=A+zone+with+that+name+already+exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create zone")
	}
	return c.Redirect("/jera/zones?message=Zone+created")
}

func EditZonePage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Redirect("/jera/zones?error=Zone+name+is+required")
	}

	err := database.UpdateZone(config.GetDB(), c.Params("id"), name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Redirect("/jera/zones?error=A+zone+with+that+name+already+exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update zone")
	}
	return c.Redirect("/jera/zones?message=Zone+updated")
}

func DeleteZonePage(c *fiber.Ctx) error {
	err := database.DeleteZone(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrZoneHasSchools) {
			return c.Redirect("/jera/zones?error=Cannot+delete+a+zone+that+still+has+schools")
		}
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete zone")
	}
	return c.Redirect("/jera/zones?message=Zone+deleted")
}
