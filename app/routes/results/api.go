package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

func GetResultsAPI(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "student_id is required"})
	}

	records, err := database.GetResultsByStudent(config.GetDB(), studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"results": records,
		"count":   len(records),
		"summary": SummarizeStudent(records),
	})
}

// GetResultAPI returns the single record for a (student, subject) pair.
func GetResultAPI(c *fiber.Ctx) error {
	result, err := database.GetResultByStudentAndSubject(config.GetDB(), c.Params("studentID"), c.Params("subjectID"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch result"})
	}
	if result == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No result recorded for this student and subject"})
	}
	return c.JSON(result)
}

// UpsertResultAPI records one (student, subject) score pair. Re-posting the
// same pair overwrites the stored record.
func UpsertResultAPI(c *fiber.Ctx) error {
	var req struct {
		StudentID string  `json:"student_id" validate:"required,uuid"`
		SubjectID string  `json:"subject_id" validate:"required,uuid"`
		CAScore   float64 `json:"ca_score" validate:"gte=0"`
		ExamScore float64 `json:"exam_score" validate:"gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Student, subject and non-negative scores are required"})
	}

	result, err := database.UpsertResult(config.GetDB(), req.StudentID, req.SubjectID, req.CAScore, req.ExamScore)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save result"})
	}
	return c.JSON(result)
}
