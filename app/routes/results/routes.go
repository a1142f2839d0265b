package results

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupResultsRoutes(app *fiber.App) {
	pages := app.Group("/jera")
	pages.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	pages.Get("/exam_management", ExamManagementPage)
	pages.Post("/exam_management", SaveScoresPage)
	pages.Get("/results/:studentID", StudentResultsPage)

	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleJera))
	api.Get("/", GetResultsAPI)
	api.Get("/:studentID/:subjectID", GetResultAPI)
	api.Post("/", UpsertResultAPI)
}

// ExamManagementPage walks the score-entry selection: school, then student,
// then a score form with one CA/exam pair per subject.
func ExamManagementPage(c *fiber.Ctx) error {
	db := config.GetDB()

	schools, err := database.GetAllSchools(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schools")
	}
	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subjects")
	}
	exams, err := database.GetExams(db, database.ExamFilters{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load exams")
	}

	selectedSchool := c.Query("school_id")
	selectedStudent := c.Query("student_id")

	var students []*models.Student
	if selectedSchool != "" {
		students, err = database.GetStudentsBySchool(db, selectedSchool)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
		}
	}

	// Existing scores keyed by subject so the form can show them.
	scores := make(map[string]*models.Result)
	if selectedStudent != "" {
		records, err := database.GetResultsByStudent(db, selectedStudent)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load results")
		}
		for _, r := range records {
			scores[r.SubjectID] = r
		}
	}

	return c.Render("results/exam_management", fiber.Map{
		"Title":           "Exam Management - JERA EMS",
		"CurrentPage":     "exam_management",
		"admin":           c.Locals("admin"),
		"schools":         schools,
		"students":        students,
		"subjects":        subjects,
		"exams":           exams,
		"scores":          scores,
		"SelectedSchool":  selectedSchool,
		"SelectedStudent": selectedStudent,
		"Error":           c.Query("error"),
		"Message":         c.Query("message"),
	})
}

// SaveScoresPage commits one batch of score upserts: for every subject it
// reads ca_<subjectID> and exam_<subjectID> from the form and overwrites
// the student's record for that subject.
func SaveScoresPage(c *fiber.Ctx) error {
	db := config.GetDB()

	studentID := c.FormValue("student_id")
	if studentID == "" {
		return c.Redirect("/jera/exam_management?error=Select+a+student+first")
	}
	if _, err := database.GetStudentByID(db, studentID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subjects")
	}

	for _, subject := range subjects {
		caScore := parseScore(c.FormValue("ca_" + subject.ID))
		examScore := parseScore(c.FormValue("exam_" + subject.ID))
		if _, err := database.UpsertResult(db, studentID, subject.ID, caScore, examScore); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save results")
		}
	}

	schoolID := c.FormValue("school_id")
	return c.Redirect("/jera/exam_management?school_id=" + schoolID +
		"&student_id=" + studentID + "&message=Results+saved+successfully")
}

// StudentResultsPage shows one student's records with the derived summary.
func StudentResultsPage(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("studentID"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	records, err := database.GetResultsByStudent(db, student.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load results")
	}

	return c.Render("results/summary", fiber.Map{
		"Title":       student.FullName() + " Results - JERA EMS",
		"CurrentPage": "exam_management",
		"admin":       c.Locals("admin"),
		"student":     student,
		"results":     records,
		"summary":     SummarizeStudent(records),
	})
}
