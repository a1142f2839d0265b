package analytics

import "testing"

func TestRegistrationSummaryInvariant(t *testing.T) {
	tests := []struct {
		name          string
		registered    int
		totalStudents int
	}{
		{name: "empty cohort", registered: 0, totalStudents: 0},
		{name: "nobody registered", registered: 0, totalStudents: 10},
		{name: "some registered", registered: 4, totalStudents: 10},
		{name: "everyone registered", registered: 10, totalStudents: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := registrationSummary(tt.registered, tt.totalStudents)
			if summary.Registered != tt.registered {
				t.Errorf("Registered = %d, want %d", summary.Registered, tt.registered)
			}
			if summary.Registered+summary.NotRegistered != tt.totalStudents {
				t.Errorf("Registered + NotRegistered = %d, want %d",
					summary.Registered+summary.NotRegistered, tt.totalStudents)
			}
		})
	}
}
