package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,oneof=school jera"`
}

// LoginAPI authenticates an admin by (username, role) and establishes a
// session cookie. Valid credentials submitted under the wrong role are
// rejected the same way as a bad password.
func LoginAPI(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return loginFailed(c, "Invalid login request.")
	}
	if err := models.Validate(req); err != nil {
		return loginFailed(c, "Check username, password, or role.")
	}

	admin, err := database.GetAdminByUsernameAndRole(config.GetDB(), req.Username, req.Role)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return loginFailed(c, "Login failed. Check username, password, or role.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	if !CheckPasswordHash(req.Password, admin.Password) {
		return loginFailed(c, "Login failed. Check username, password, or role.")
	}

	token, err := GenerateSessionToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	if isAPIRequest(c) {
		return c.JSON(fiber.Map{"message": "Login successful", "role": admin.Role})
	}

	if admin.Role == models.RoleSchool {
		return c.Redirect("/dashboard/school")
	}
	return c.Redirect("/dashboard/jera")
}

func loginFailed(c *fiber.Ctx, message string) error {
	if isAPIRequest(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
	}
	return c.Render("auth/login", fiber.Map{
		"Title": "Login - JERA EMS",
		"Error": message,
	}, "")
}

// MeAPI returns the stored account for the current session. The record
// comes from the database, not the token, so a deleted account reads as
// an invalid session.
func MeAPI(c *fiber.Ctx) error {
	adminID, _ := c.Locals("admin_id").(string)

	admin, err := database.GetAdminByID(config.GetDB(), adminID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account no longer exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch account"})
	}
	return c.JSON(admin)
}

// LogoutAPI clears the session cookie, ending the session.
func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/auth/login")
}
