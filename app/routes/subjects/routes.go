package subjects

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	pages := app.Group("/jera/subjects")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	pages.Get("/", SubjectsPage)
	pages.Post("/", CreateSubjectPage)
	pages.Post("/:id/delete", DeleteSubjectPage)

	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	api.Get("/", GetSubjectsAPI)
	api.Post("/", CreateSubjectAPI)
	api.Delete("/:id", DeleteSubjectAPI)
}

func SubjectsPage(c *fiber.Ctx) error {
	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subjects")
	}

	return c.Render("subjects/index", fiber.Map{
		"Title":       "Subjects - JERA EMS",
		"CurrentPage": "subjects",
		"admin":       c.Locals("admin"),
		"subjects":    subjects,
		"Error":       c.Query("error"),
		"Message":     c.Query("message"),
	})
}

func CreateSubjectPage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Redirect("/jera/subjects?error=Subject+name+is+required")
	}

	if _, err := database.CreateSubject(config.GetDB(), name); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Redirect("/jera/subjects?error=That+subject+already+exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
	}
	return c.Redirect("/jera/subjects?message=Subject+added")
}

func DeleteSubjectPage(c *fiber.Ctx) error {
	err := database.DeleteSubject(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return c.Redirect("/jera/subjects?message=Subject+deleted")
}
