package students

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

// savePhoto stores an uploaded passport photo under the upload directory
// with a generated filename, keeping only the original extension.
func savePhoto(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(config.UploadDir(), filename)); err != nil {
		return "", fmt.Errorf("failed to save photo: %w", err)
	}
	return filename, nil
}

func GetStudentsAPI(c *fiber.Ctx) error {
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
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"students": studentList, "count": len(studentList)})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(student)
}

type studentRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female"`
	HomeTown        string `json:"home_town"`
	LGA             string `json:"lga"`
	GuardianContact string `json:"guardian_contact"`
	SchoolID        string `json:"school_id" validate:"required,uuid"`
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing or invalid student fields"})
	}

	student := &models.Student{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		HomeTown:        req.HomeTown,
		LGA:             req.LGA,
		GuardianContact: req.GuardianContact,
		SchoolID:        req.SchoolID,
	}
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing or invalid student fields"})
	}

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Gender = req.Gender
	student.HomeTown = req.HomeTown
	student.LGA = req.LGA
	student.GuardianContact = req.GuardianContact
	student.SchoolID = req.SchoolID

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	err := database.DeleteStudent(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
