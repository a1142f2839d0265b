package exams

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupExamsRoutes(app *fiber.App) {
	pages := app.Group("/jera/exams")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	pages.Get("/", ExamsPage)
	pages.Post("/", CreateExamPage)

	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	api.Get("/", GetExamsAPI)
	api.Post("/", CreateExamAPI)
	api.Put("/:id", UpdateExamAPI)
}

func ExamsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	examList, err := database.GetExams(db, database.ExamFilters{
		StudentID: c.Query("student_id"),
		SchoolID:  c.Query("school_id"),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load exams")
	}

	studentList, err := database.GetAllStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	return c.Render("exams/index", fiber.Map{
		"Title":       "Exams - JERA EMS",
		"CurrentPage": "exams",
		"admin":       c.Locals("admin"),
		"exams":       examList,
		"students":    studentList,
		"Error":       c.Query("error"),
		"Message":     c.Query("message"),
	})
}

// CreateExamPage registers an exam sitting. The student link is optional;
// a standalone exam just records type, year and date.
func CreateExamPage(c *fiber.Ctx) error {
	examType := c.FormValue("exam_type")
	if examType != models.ExamTypeQE && examType != models.ExamTypeBECE {
		return c.Redirect("/jera/exams?error=Exam+type+must+be+QE+or+BECE")
	}

	year, err := parseYear(c.FormValue("year"))
	if err != nil || year == 0 {
		return c.Redirect("/jera/exams?error=Exam+year+is+required")
	}

	var examDate time.Time
	if d := c.FormValue("exam_date"); d != "" {
		if parsed, err := time.Parse("2006-01-02", d); err == nil {
			examDate = parsed
		}
	}

	var studentID *string
	if s := c.FormValue("student_id"); s != "" {
		studentID = &s
	}

	if _, err := database.CreateExam(config.GetDB(), examType, year, examDate, studentID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam")
	}
	return c.Redirect("/jera/exams?message=Exam+registered")
}
