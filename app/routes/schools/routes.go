package schools

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupSchoolsRoutes(app *fiber.App) {
	pages := app.Group("/jera/schools")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	pages.Get("/", SchoolsPage)
	pages.Post("/", CreateSchoolPage)
	pages.Post("/:id/edit", EditSchoolPage)
	pages.Post("/:id/delete", DeleteSchoolPage)

	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	api.Get("/", GetSchoolsAPI)
	api.Post("/", CreateSchoolAPI)
	api.Put("/:id", UpdateSchoolAPI)
	api.Delete("/:id", DeleteSchoolAPI)
}

// SchoolsPage lists schools, optionally filtered by zone, with the
// registration form.
func SchoolsPage(c *fiber.Ctx) error {
	db := config.GetDB()
	zoneID := c.Query("zone_id")

	var (
		schoolList []*models.School
		err        error
	)
	if zoneID != "" {
		schoolList, err = database.GetSchoolsByZone(db, zoneID)
	} else {
		schoolList, err = database.GetAllSchools(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schools")
	}

	zones, err := database.GetAllZones(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load zones")
	}

	return c.Render("schools/index", fiber.Map{
		"Title":        "Schools - JERA EMS",
		"CurrentPage":  "schools",
		"admin":        c.Locals("admin"),
		"schools":      schoolList,
		"zones":        zones,
		"SelectedZone": zoneID,
		"Error":        c.Query("error"),
		"Message":      c.Query("message"),
	})
}

func CreateSchoolPage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	zoneID := c.FormValue("zone_id")
	if name == "" || zoneID == "" {
		return c.Redirect("/jera/schools?error=School+name+and+zone+are+required")
	}

	_, err := database.CreateSchool(config.GetDB(), name, zoneID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Redirect("/jera/schools?error=Selected+zone+does+not+exist")
		}
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Redirect("/jera/schools?error=School+code+collision,+try+again")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create school")
	}
	return c.Redirect("/jera/schools?message=School+registered")
}

func EditSchoolPage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Redirect("/jera/schools?error=School+name+is+required")
	}

	err := database.UpdateSchool(config.GetDB(), c.Params("id"), name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update school")
	}
	return c.Redirect("/jera/schools?message=School+updated")
}

func DeleteSchoolPage(c *fiber.Ctx) error {
	err := database.DeleteSchool(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete school")
	}
	return c.Redirect("/jera/schools?message=School+deleted")
}
