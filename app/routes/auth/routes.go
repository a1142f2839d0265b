package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Get("/logout", LogoutAPI)

	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in admins go straight to their dashboard.
	if tokenString := c.Cookies(SessionCookie); tokenString != "" {
		if claims, err := ValidateSessionToken(tokenString); err == nil {
			if claims.Role == models.RoleSchool {
				return c.Redirect("/dashboard/school")
			}
			return c.Redirect("/dashboard/jera")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - JERA EMS",
		"Error": c.Query("error"),
	}, "")
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// AuthMiddleware validates the session token and sets the admin context.
// Requests without a valid session are redirected to the login entry
// point; API requests get a 401 instead.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		if isAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No session found"})
		}
		return c.Redirect("/auth/login?error=Please+log+in+to+continue")
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		if isAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
		}
		return c.Redirect("/auth/login?error=Your+session+has+expired")
	}

	admin := &models.Admin{
		ID:       claims.AdminID,
		Username: claims.Username,
		Role:     claims.Role,
	}

	c.Locals("admin_id", admin.ID)
	c.Locals("admin_username", admin.Username)
	c.Locals("admin_role", admin.Role)
	c.Locals("admin", admin)

	return c.Next()
}

// RequireRole denies the request unless the session's role matches. Denied
// callers are sent back to the login page with a warning, never given
// partial access.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminRole, _ := c.Locals("admin_role").(string)
		if adminRole == role {
			return c.Next()
		}

		if isAPIRequest(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		return c.Redirect("/auth/login?error=You+do+not+have+access+to+that+page")
	}
}
