package exams

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

func parseYear(s string) (int, error) {
	return strconv.Atoi(s)
}

func GetExamsAPI(c *fiber.Ctx) error {
	examList, err := database.GetExams(config.GetDB(), database.ExamFilters{
		StudentID: c.Query("student_id"),
		SchoolID:  c.Query("school_id"),
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}
	return c.JSON(fiber.Map{"exams": examList, "count": len(examList)})
}

func CreateExamAPI(c *fiber.Ctx) error {
	var req struct {
		ExamType  string  `json:"exam_type" validate:"required,oneof=QE BECE"`
		Year      int     `json:"year" validate:"required,gte=2000"`
		ExamDate  string  `json:"exam_date"`
		StudentID *string `json:"student_id" validate:"omitempty,uuid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Exam type and year are required"})
	}

	var examDate time.Time
	if req.ExamDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExamDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Exam date must be YYYY-MM-DD"})
		}
		examDate = parsed
	}

	exam, err := database.CreateExam(config.GetDB(), req.ExamType, req.Year, examDate, req.StudentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}
	return c.Status(201).JSON(exam)
}

func UpdateExamAPI(c *fiber.Ctx) error {
	var req struct {
		ExamType  string  `json:"exam_type" validate:"required,oneof=QE BECE"`
		Year      int     `json:"year" validate:"required,gte=2000"`
		ExamDate  string  `json:"exam_date"`
		StudentID *string `json:"student_id" validate:"omitempty,uuid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Exam type and year are required"})
	}

	exam := &models.Exam{
		ID:        c.Params("id"),
		ExamType:  req.ExamType,
		Year:      req.Year,
		StudentID: req.StudentID,
	}
	if req.ExamDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExamDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Exam date must be YYYY-MM-DD"})
		}
		exam.ExamDate = parsed
	}

	if err := database.UpdateExam(config.GetDB(), exam); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam"})
	}
	return c.JSON(exam)
}
