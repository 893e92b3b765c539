package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"iso", "YYYY-MM-DD", "2006-01-02", false},
		{"month name and year", "MMMM YYYY", "January 2006", false},
		{"short month", "MMM D", "Jan 2", false},
		{"escaped literal", "[Period]: MMMM", "Period: January", false},
		{"literals preserved", "DD.MM.YY", "02.01.06", false},
		{"empty", "", "", true},
		{"unclosed bracket", "[oops YYYY", "", true},
		{"too long", strings.Repeat("Y", MaxDateFormatLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("ParseDateFormat(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"literal passthrough", "March 2025", "March 2025", false},
		{"empty passthrough", "", "", false},
		{"auto", "auto", "2025-03-07", false},
		{"auto uppercase", "AUTO", "2025-03-07", false},
		{"auto month", AutoMonth, "March 2025", false},
		{"auto long preset", "auto:long", "March 7, 2025", false},
		{"auto custom", "auto:DD/MM/YYYY", "07/03/2025", false},
		{"auto empty format", "auto:", "", true},
		{"auto-like literal", "Autumn 2025", "Autumn 2025", false},
		{"auto word literal", "automatic", "automatic", false},
		{"auto bad format", "auto:[MMMM", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, now)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("ResolveDate(%q) error = %v, want ErrInvalidDateFormat", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
