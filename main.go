package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/routes/analytics"
	"github.com/Aliyuabk/EMS/app/routes/auth"
	"github.com/Aliyuabk/EMS/app/routes/dashboard"
	"github.com/Aliyuabk/EMS/app/routes/exams"
	"github.com/Aliyuabk/EMS/app/routes/results"
	"github.com/Aliyuabk/EMS/app/routes/schools"
	"github.com/Aliyuabk/EMS/app/routes/students"
	"github.com/Aliyuabk/EMS/app/routes/subjects"
	"github.com/Aliyuabk/EMS/app/routes/zones"
)

// customErrorHandler renders error pages for web requests and JSON for
// API requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", fiber.Map{
			"Title":       "Page Not Found - JERA EMS",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - JERA EMS",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedDefaults(config.GetDB()); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	zones.SetupZonesRoutes(app)
	schools.SetupSchoolsRoutes(app)
	students.SetupStudentsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	exams.SetupExamsRoutes(app)
	results.SetupResultsRoutes(app)
	analytics.SetupAnalyticsRoutes(app)

	addr := ":" + config.AppConfig.Port
	log.Println("Starting JERA EMS on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
