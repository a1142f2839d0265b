package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)

	dash.Get("/school", auth.RequireRole(models.RoleSchool), SchoolDashboardPage)
	dash.Get("/jera", auth.RequireRole(models.RoleJera), JeraDashboardPage)
}
