package cli

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"", nil, false},
		{"   ", nil, false},
		{"mon,tue,wed", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, false},
		{"Monday, Friday", []time.Weekday{time.Monday, time.Friday}, false},
		{"0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"mon,funday", nil, true},
		{"7", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatOffer(t *testing.T) {
	ctx, _ := setupTestClinic(t, "")
	offers := ctx.Engine.SearchByPractitioner("john smith")
	if len(offers) == 0 {
		t.Fatal("expected offers for John Smith")
	}
	got := FormatOffer(offers[0])
	want := "John Smith - Deep Tissue Massage - Thursday 1 May 2025, 10:00-11:00"
	if got != want {
		t.Errorf("FormatOffer() = %q, want %q", got, want)
	}
}

func TestLinePrompter(t *testing.T) {
	var out strings.Builder
	p := NewLinePrompter(strings.NewReader("2\nfoo\n  Jane  \n"), &out)

	n, err := p.Menu("== TITLE ==", []string{"one", "two"}, "back")
	if err != nil || n != 2 {
		t.Fatalf("Menu() = %d, %v", n, err)
	}
	if !strings.Contains(out.String(), "1. one\n2. two\n0. back\nEnter your choice: ") {
		t.Errorf("unexpected menu rendering:\n%s", out.String())
	}

	if _, err := p.Int("n: "); err == nil {
		t.Error("expected ErrInvalidInput for non-numeric input")
	}

	s, err := p.Text("name: ")
	if err != nil || s != "Jane" {
		t.Errorf("Text() = %q, %v", s, err)
	}

	if _, err := p.Text("more: "); err == nil {
		t.Error("expected io.EOF at end of input")
	}
}

func TestStyleReport_KeepsText(t *testing.T) {
	text := "===== X =====\nPHYSIOTHERAPIST: A\nplain line"
	styled := styleReport(text)
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(styled, line) {
			t.Errorf("styled report lost %q", line)
		}
	}
}
