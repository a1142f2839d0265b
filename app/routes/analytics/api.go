package analytics

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
	"github.com/Aliyuabk/EMS/app/routes/results"
)

// cohortSummary recomputes the population counts on every call. No caching
// at this scale.
func cohortSummary(db *sql.DB) (models.CohortSummary, error) {
	var summary models.CohortSummary
	var err error

	if summary.TotalSchools, err = database.CountSchools(db); err != nil {
		return summary, err
	}
	if summary.TotalStudents, err = database.CountStudents(db); err != nil {
		return summary, err
	}
	if summary.MaleCount, err = database.CountStudentsByGender(db, models.GenderMale); err != nil {
		return summary, err
	}
	if summary.FemaleCount, err = database.CountStudentsByGender(db, models.GenderFemale); err != nil {
		return summary, err
	}

	totals, err := database.TotalsByStudent(db)
	if err != nil {
		return summary, err
	}
	summary.StudentsWithFiveCredits = results.StudentsWithMinCredits(totals, results.FiveCreditMinimum)

	return summary, nil
}

// registrationSummary splits totalStudents by whether a score record
// exists, so Registered + NotRegistered always equals totalStudents.
func registrationSummary(registered, totalStudents int) models.RegistrationSummary {
	return models.RegistrationSummary{
		Registered:    registered,
		NotRegistered: totalStudents - registered,
	}
}

// subjectRegistrationSummary infers registration from score-record
// existence. Students sitting the exam but not yet scored are counted as
// not registered; that approximation is accepted here.
func subjectRegistrationSummary(db *sql.DB, subjectID, zoneID string) (models.RegistrationSummary, error) {
	registered, err := database.CountResultsBySubject(db, subjectID, zoneID)
	if err != nil {
		return models.RegistrationSummary{}, err
	}
	totalStudents, err := database.CountStudents(db)
	if err != nil {
		return models.RegistrationSummary{}, err
	}
	return registrationSummary(registered, totalStudents), nil
}

func GetCohortSummaryAPI(c *fiber.Ctx) error {
	summary, err := cohortSummary(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute analytics"})
	}
	return c.JSON(summary)
}

func GetSubjectAnalysisAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	subject, err := database.GetSubjectByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	summary, err := subjectRegistrationSummary(db, subject.ID, c.Query("zone_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute subject analysis"})
	}
	return c.JSON(fiber.Map{"subject": subject, "summary": summary})
}
