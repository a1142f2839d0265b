package analytics

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	pages := app.Group("/jera")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	pages.Get("/analytics", AnalyticsPage)
	pages.Get("/subject_analysis", SubjectAnalysisPage)
	pages.Post("/subject_analysis", SubjectAnalysisPage)
	pages.Get("/photo_card/:studentID", PhotoCardPage)

	api := app.Group("/api/analytics")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	api.Get("/cohort", GetCohortSummaryAPI)
	api.Get("/subjects/:id", GetSubjectAnalysisAPI)
}

// AnalyticsPage renders the cohort-wide counts.
func AnalyticsPage(c *fiber.Ctx) error {
	summary, err := cohortSummary(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute analytics")
	}

	return c.Render("analytics/index", fiber.Map{
		"Title":       "Analytics - JERA EMS",
		"CurrentPage": "analytics",
		"admin":       c.Locals("admin"),
		"summary":     summary,
	})
}

// SubjectAnalysisPage shows registration coverage for a chosen subject,
// optionally restricted to one zone.
func SubjectAnalysisPage(c *fiber.Ctx) error {
	db := config.GetDB()

	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subjects")
	}
	zones, err := database.GetAllZones(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load zones")
	}

	selectedSubject := c.FormValue("subject_id", c.Query("subject_id"))
	selectedZone := c.FormValue("zone_id", c.Query("zone_id"))

	var analysis *models.RegistrationSummary
	if selectedSubject != "" {
		summary, err := subjectRegistrationSummary(db, selectedSubject, selectedZone)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute subject analysis")
		}
		analysis = &summary
	}

	return c.Render("analytics/subject_analysis", fiber.Map{
		"Title":           "Subject Analysis - JERA EMS",
		"CurrentPage":     "subject_analysis",
		"admin":           c.Locals("admin"),
		"subjects":        subjects,
		"zones":           zones,
		"analysis":        analysis,
		"SelectedSubject": selectedSubject,
		"SelectedZone":    selectedZone,
	})
}

// PhotoCardPage renders a student's stored photo alongside the most recent
// exam's year.
func PhotoCardPage(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("studentID"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	school, err := database.GetSchoolByID(db, student.SchoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load school")
	}
	student.School = school

	exam, err := database.GetLatestExam(db)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load exam")
	}

	return c.Render("analytics/photo_card", fiber.Map{
		"Title":       student.FullName() + " Photo Card - JERA EMS",
		"CurrentPage": "analytics",
		"admin":       c.Locals("admin"),
		"student":     student,
		"exam":        exam,
	})
}
