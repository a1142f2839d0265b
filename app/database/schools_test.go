package database

import "testing"

func TestGenerateSchoolCode(t *testing.T) {
	tests := []struct {
		name     string
		zoneName string
		existing int
		want     string
	}{
		{name: "first school in Auyo", zoneName: "Auyo", existing: 0, want: "AUY001"},
		{name: "fourth school in Auyo", zoneName: "Auyo", existing: 3, want: "AUY004"},
		{name: "first school in Dutse", zoneName: "Dutse", existing: 0, want: "DUT001"},
		{name: "lower case zone name", zoneName: "dutse", existing: 0, want: "DUT001"},
		{name: "two word zone", zoneName: "Kafin Hausa", existing: 11, want: "KAF012"},
		{name: "punctuated zone", zoneName: "B/Kudu", existing: 0, want: "BKU001"},
		{name: "short zone name", zoneName: "Bo", existing: 0, want: "BO001"},
		{name: "hundredth school", zoneName: "Ringim", existing: 99, want: "RIN100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSchoolCode(tt.zoneName, tt.existing); got != tt.want {
				t.Errorf("GenerateSchoolCode(%q, %d) = %q, want %q",
					tt.zoneName, tt.existing, got, tt.want)
			}
		})
	}
}

func TestGenerateSchoolCodeDeterministic(t *testing.T) {
	a := GenerateSchoolCode("Dutse", 2)
	b := GenerateSchoolCode("Dutse", 2)
	if a != b {
		t.Fatalf("expected deterministic codes, got %q and %q", a, b)
	}
}
