package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aliyuabk/EMS/app/models"
)

func record(ca, exam float64) *models.Result {
	return &models.Result{CAScore: ca, ExamScore: exam, Total: ca + exam}
}

func TestSummarizeStudent(t *testing.T) {
	tests := []struct {
		name    string
		records []*models.Result
		want    models.StudentSummary
	}{
		{
			name:    "no records",
			records: nil,
			want:    models.StudentSummary{},
		},
		{
			name:    "single credit",
			records: []*models.Result{record(30, 45)},
			want:    models.StudentSummary{TotalScore: 75, AverageScore: 75, CreditCount: 1},
		},
		{
			name: "mixed credits",
			records: []*models.Result{
				record(20, 20), // 40, below threshold
				record(25, 25), // 50, exactly at threshold counts
				record(40, 50), // 90
			},
			want: models.StudentSummary{TotalScore: 180, AverageScore: 60, CreditCount: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeStudent(tt.records))
		})
	}
}

func TestCreditCountMatchesThreshold(t *testing.T) {
	records := []*models.Result{
		record(25, 24), // 49
		record(25, 25), // 50
		record(0, 0),
		record(50, 49), // 99
	}

	summary := SummarizeStudent(records)

	manual := 0
	for _, r := range records {
		if r.Total >= 50 {
			manual++
		}
	}
	assert.Equal(t, manual, summary.CreditCount)
	assert.Equal(t, 2, summary.CreditCount)
}

func TestStudentsWithMinCredits(t *testing.T) {
	// One student with exactly five credit subjects, one with four.
	totals := map[string][]float64{
		"passing": {60, 60, 60, 60, 60},
		"short":   {60, 60, 60, 60},
	}
	assert.Equal(t, 1, StudentsWithMinCredits(totals, FiveCreditMinimum))

	// Sub-threshold totals never count toward the five.
	totals["padded"] = []float64{60, 60, 60, 60, 49}
	assert.Equal(t, 1, StudentsWithMinCredits(totals, FiveCreditMinimum))
}

func TestCountCredits(t *testing.T) {
	assert.Equal(t, 0, CountCredits(nil))
	assert.Equal(t, 2, CountCredits([]float64{50, 49.9, 100}))
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"0", 0},
		{"30", 30},
		{"45.5", 45.5},
	}
	for _, tt := range tests {
		if got := parseScore(tt.in); got != tt.want {
			t.Errorf("parseScore(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
