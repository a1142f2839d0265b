package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

// SchoolDashboardPage renders the school admin's summary view.
func SchoolDashboardPage(c *fiber.Ctx) error {
	admin := c.Locals("admin").(*models.Admin)

	schools, err := database.GetAllSchools(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schools")
	}

	return c.Render("dashboard/school", fiber.Map{
		"Title":       "School Dashboard - JERA EMS",
		"CurrentPage": "dashboard",
		"admin":       admin,
		"schools":     schools,
	})
}

// JeraDashboardPage renders the examination authority's dashboard with
// the reference-data listings.
func JeraDashboardPage(c *fiber.Ctx) error {
	admin := c.Locals("admin").(*models.Admin)
	db := config.GetDB()

	zones, err := database.GetAllZones(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load zones")
	}
	schools, err := database.GetAllSchools(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schools")
	}
	exams, err := database.GetExams(db, database.ExamFilters{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load exams")
	}

	return c.Render("dashboard/jera", fiber.Map{
		"Title":       "JERA Dashboard - JERA EMS",
		"CurrentPage": "dashboard",
		"admin":       admin,
		"zones":       zones,
		"schools":     schools,
		"exams":       exams,
	})
}
