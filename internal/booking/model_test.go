package booking

import (
	"errors"
	"testing"
	"time"
)

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantErr bool
	}{
		{name: "one hour", end: start.Add(time.Hour)},
		{name: "zero length", end: start, wantErr: true},
		{name: "end before start", end: start.Add(-time.Minute), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewTimeSlot(start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSlot) {
					t.Errorf("NewTimeSlot() error = %v, want ErrInvalidSlot", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTimeSlot() error = %v", err)
			}
			if !s.Available() {
				t.Error("new slot is not available")
			}
		})
	}
}

func TestFormattedRange(t *testing.T) {
	s, _ := NewTimeSlot(
		time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	)
	if got, want := s.FormattedRange(), "Thursday 1 May 2025, 09:00-10:00"; got != want {
		t.Errorf("FormattedRange() = %q, want %q", got, want)
	}
}

func TestNewTreatment(t *testing.T) {
	tests := []struct {
		name     string
		tname    string
		area     string
		duration int
		wantErr  bool
	}{
		{name: "valid", tname: "Acupuncture", area: "Acupuncture", duration: 45},
		{name: "empty name", tname: " ", area: "Acupuncture", duration: 45, wantErr: true},
		{name: "empty area", tname: "Acupuncture", area: "", duration: 45, wantErr: true},
		{name: "zero duration", tname: "Acupuncture", area: "Acupuncture", duration: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTreatment(tt.tname, tt.area, tt.duration)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTreatment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidTreatment) {
				t.Errorf("NewTreatment() error = %v, want ErrInvalidTreatment", err)
			}
		})
	}
}

func TestTreatmentEqualByName(t *testing.T) {
	a := Treatment{Name: "Acupuncture", ExpertiseArea: "Acupuncture", DurationMinutes: 45}
	b := Treatment{Name: "Acupuncture", ExpertiseArea: "Other", DurationMinutes: 30}
	if !a.Equal(b) {
		t.Error("treatments with the same name are not equal")
	}
	if a.Equal(deepTissue) {
		t.Error("treatments with different names are equal")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
		consumes bool
	}{
		{StatusBooked, false, true},
		{StatusCancelled, true, false},
		{StatusAttended, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if tt.status.Terminal() != tt.terminal {
				t.Errorf("Terminal() = %v, want %v", tt.status.Terminal(), tt.terminal)
			}
			if tt.status.Consumes() != tt.consumes {
				t.Errorf("Consumes() = %v, want %v", tt.status.Consumes(), tt.consumes)
			}
		})
	}
}
