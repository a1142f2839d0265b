package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: sql.ErrNoRows, want: ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("query: %w", sql.ErrNoRows), want: ErrNotFound},
		{name: "unique violation", in: &pq.Error{Code: pqUniqueViolation}, want: ErrDuplicateKey},
		{name: "other pq error", in: &pq.Error{Code: "23503"}, want: nil},
		{name: "plain error", in: errors.New("boom"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want != nil {
				if !errors.Is(got, tt.want) {
					t.Errorf("translateError(%v) = %v, want %v", tt.in, got, tt.want)
				}
				return
			}
			// Untranslated errors pass through unchanged.
			if !errors.Is(got, tt.in) && got != tt.in {
				t.Errorf("translateError(%v) = %v, want passthrough", tt.in, got)
			}
		})
	}
}
