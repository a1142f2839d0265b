package zones

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
)

func GetZonesAPI(c *fiber.Ctx) error {
	zones, err := database.GetAllZones(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch zones"})
	}
	return c.JSON(fiber.Map{"zones": zones, "count": len(zones)})
}

func CreateZoneAPI(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Zone name is required"})
	}

	zone, err := database.CreateZone(config.GetDB(), req.Name)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Status(409).JSON(fiber.Map{"error": "Zone name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create zone"})
	}
	return c.Status(201).JSON(zone)
}

func UpdateZoneAPI(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Zone name is required"})
	}

	err := database.UpdateZone(config.GetDB(), c.Params("id"), req.Name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Zone not found"})
		}
		if errors.Is(err, database.ErrDuplicateKey) {
			return c.Status(409).JSON(fiber.Map{"error": "Zone name already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update zone"})
	}
	return c.JSON(fiber.Map{"message": "Zone updated"})
}

func DeleteZoneAPI(c *fiber.Ctx) error {
	err := database.DeleteZone(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrZoneHasSchools) {
			return c.Status(409).JSON(fiber.Map{"error": "Zone still has schools"})
		}
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Zone not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete zone"})
	}
	return c.JSON(fiber.Map{"message": "Zone deleted"})
}
