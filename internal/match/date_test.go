package match

import (
	"testing"
	"time"
)

func TestParseKickoff(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		kickoff  string
		want     time.Time
		wantFail bool
	}{
		{
			name:    "standard fixture",
			date:    "28/10/25",
			kickoff: "20:30",
			want:    time.Date(2025, time.October, 28, 20, 30, 0, 0, time.UTC),
		},
		{
			name:    "single digit day and month",
			date:    "5/3/26",
			kickoff: "19:45",
			want:    time.Date(2026, time.March, 5, 19, 45, 0, 0, time.UTC),
		},
		{
			name:    "century boundary year 00",
			date:    "01/01/00",
			kickoff: "12:00",
			want:    time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "month 13 carries into next year",
			date:    "05/13/25",
			kickoff: "20:30",
			want:    time.Date(2026, time.January, 5, 20, 30, 0, 0, time.UTC),
		},
		{
			name:     "placeholder date",
			date:     "N/A",
			kickoff:  "20:30",
			wantFail: true,
		},
		{
			name:     "placeholder time",
			date:     "28/10/25",
			kickoff:  "N/A",
			wantFail: true,
		},
		{
			name:     "two part date",
			date:     "28/10",
			kickoff:  "20:30",
			wantFail: true,
		},
		{
			name:     "four part date",
			date:     "28/10/20/25",
			kickoff:  "20:30",
			wantFail: true,
		},
		{
			name:     "time without colon",
			date:     "28/10/25",
			kickoff:  "2030",
			wantFail: true,
		},
		{
			name:     "time with seconds",
			date:     "28/10/25",
			kickoff:  "20:30:00",
			wantFail: true,
		},
		{
			name:     "non-numeric date parts",
			date:     "aa/bb/cc",
			kickoff:  "20:30",
			wantFail: true,
		},
		{
			name:     "non-numeric time parts",
			date:     "28/10/25",
			kickoff:  "hh:mm",
			wantFail: true,
		},
		{
			name:     "empty strings",
			date:     "",
			kickoff:  "",
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKickoff(tt.date, tt.kickoff)

			if tt.wantFail {
				if ok {
					t.Errorf("ParseKickoff(%q, %q) = %v, want failure", tt.date, tt.kickoff, got)
				}
				if !got.IsZero() {
					t.Errorf("failed parse should return the zero time, got %v", got)
				}
				return
			}

			if !ok {
				t.Fatalf("ParseKickoff(%q, %q) failed, want %v", tt.date, tt.kickoff, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseKickoff(%q, %q) = %v, want %v", tt.date, tt.kickoff, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseKickoff() location = %v, want UTC", got.Location())
			}
		})
	}
}
