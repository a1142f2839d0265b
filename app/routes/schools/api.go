package schools

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

func GetSchoolsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	zoneID := c.Query("zone_id")

	var (
		schoolList []*models.School
		err        error
	)
	if zoneID != "" {
		schoolList, err = database.GetSchoolsByZone(db, zoneID)
	} else {
		schoolList, err = database.GetAllSchools(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}
	return c.JSON(fiber.Map{"schools": schoolList, "count": len(schoolList)})
}

func CreateSchoolAPI(c *fiber.Ctx) error {
	var req struct {
		Name   string `json:"name" validate:"required"`
		ZoneID string `json:"zone_id" validate:"required,uuid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "School name and zone are required"})
	}

	school, err := database.CreateSchool(config.GetDB(), req.Name, req.ZoneID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Zone not found"})
		}
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Status(409).JSON(fiber.Map{"error": "School code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create school"})
	}
	return c.Status(201).JSON(school)
}

func UpdateSchoolAPI(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "School name is required"})
	}

	err := database.UpdateSchool(config.GetDB(), c.Params("id"), req.Name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "School not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update school"})
	}
	return c.JSON(fiber.Map{"message": "School updated"})
}

func DeleteSchoolAPI(c *fiber.Ctx) error {
	err := database.DeleteSchool(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "School not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete school"})
	}
	return c.JSON(fiber.Map{"message": "School deleted"})
}
