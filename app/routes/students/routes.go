package students

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	pages := app.Group("/students")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", StudentsPage)
	pages.Post("/", CreateStudentPage)
	pages.Get("/:id", StudentViewPage)
	pages.Post("/:id/delete", DeleteStudentPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

// StudentsPage lists students, optionally filtered by school, with the
// registration form.
func StudentsPage(c *fiber.Ctx) error {
	db := config.GetDB()
	schoolID := c.Query("school_id")

	var (
		studentList []*models.Student
		err         error
	)
	if schoolID != "" {
		studentList, err = database.GetStudentsBySchool(db, schoolID)
	} else {
		studentList, err = database.GetAllStudents(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	schoolList, err := database.GetAllSchools(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load schools")
	}

	return c.Render("students/index", fiber.Map{
		"Title":          "Students - JERA EMS",
		"CurrentPage":    "students",
		"admin":          c.Locals("admin"),
		"students":       studentList,
		"schools":        schoolList,
		"SelectedSchool": schoolID,
		"Error":          c.Query("error"),
		"Message":        c.Query("message"),
	})
}

// CreateStudentPage registers a student from the multipart form, storing
// the optional passport photo under the upload directory.
func CreateStudentPage(c *fiber.Ctx) error {
	student := &models.Student{
		FirstName:       c.FormValue("first_name"),
		LastName:        c.FormValue("last_name"),
		Gender:          c.FormValue("gender"),
		HomeTown:        c.FormValue("home_town"),
		LGA:             c.FormValue("lga"),
		GuardianContact: c.FormValue("guardian_contact"),
		SchoolID:        c.FormValue("school_id"),
	}

	if student.FirstName == "" || student.LastName == "" || student.SchoolID == "" {
		return c.Redirect("/students?error=First+name,+last+name+and+school+are+required")
	}
	if student.Gender != models.GenderMale && student.Gender != models.GenderFemale {
		return c.Redirect("/students?error=Select+a+valid+gender")
	}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		filename, err := savePhoto(c, file)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to store photo")
		}
		student.Photo = filename
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register student")
	}
	return c.Redirect("/students?message=Student+registered")
}

func StudentViewPage(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}

	results, err := database.GetResultsByStudent(db, student.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load results")
	}
	student.Results = results

	return c.Render("students/view", fiber.Map{
		"Title":       fmt.Sprintf("%s - JERA EMS", student.FullName()),
		"CurrentPage": "students",
		"admin":       c.Locals("admin"),
		"student":     student,
	})
}

func DeleteStudentPage(c *fiber.Ctx) error {
	err := database.DeleteStudent(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.Redirect("/students?message=Student+deleted")
}
