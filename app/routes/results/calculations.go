package results

import (
	"strconv"

	"github.com/Aliyuabk/EMS/app/models"
)

// CreditThreshold is the minimum total score for a subject result to count
// as a credit.
const CreditThreshold = 50.0

// FiveCreditMinimum is the number of credit subjects a student needs to
// meet the school-leaving criterion counted by the analytics page.
const FiveCreditMinimum = 5

// parseScore reads a score form field. Missing or malformed input defaults
// to 0 rather than erroring; negative values are treated the same way.
func parseScore(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// SummarizeStudent aggregates a student's result records: total score,
// average over the records present (0 when there are none) and the number
// of credit-level subjects.
func SummarizeStudent(records []*models.Result) models.StudentSummary {
	var summary models.StudentSummary
	for _, r := range records {
		summary.TotalScore += r.Total
		if r.Total >= CreditThreshold {
			summary.CreditCount++
		}
	}
	if len(records) > 0 {
		summary.AverageScore = summary.TotalScore / float64(len(records))
	}
	return summary
}

// CountCredits counts the totals at or above the credit threshold.
func CountCredits(totals []float64) int {
	count := 0
	for _, t := range totals {
		if t >= CreditThreshold {
			count++
		}
	}
	return count
}

// StudentsWithMinCredits counts the students whose result totals include
// at least min credit-level subjects.
func StudentsWithMinCredits(totalsByStudent map[string][]float64, min int) int {
	count := 0
	for _, totals := range totalsByStudent {
		if CountCredits(totals) >= min {
			count++
		}
	}
	return count
}
