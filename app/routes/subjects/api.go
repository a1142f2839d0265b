package subjects

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
)

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Subject name is required"})
	}

	subject, err := database.CreateSubject(config.GetDB(), req.Name)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Status(409).JSON(fiber.Map{"error": "Subject already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(201).JSON(subject)
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	err := database.DeleteSubject(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject deleted"})
}
