package booking

import (
	"testing"
)

func TestSearchByExpertiseOrdering(t *testing.T) {
	e := NewEngine()

	t1 := Treatment{Name: "T1", ExpertiseArea: "Physio", DurationMinutes: 30}
	t2 := Treatment{Name: "T2", ExpertiseArea: "Physio", DurationMinutes: 45}
	t3 := Treatment{Name: "T3", ExpertiseArea: "Physio", DurationMinutes: 60}

	p1 := NewPhysiotherapist(1, "P One", "", "")
	p1.AddExpertise("Physio")
	_ = p1.AddTreatment(t1)
	_ = p1.AddTreatment(t2)
	s1 := slotAt(t, "2025-05-01", 9)
	_ = p1.AddSlot("2025-05-01", s1)

	p2 := NewPhysiotherapist(2, "P Two", "", "")
	p2.AddExpertise("Physio")
	_ = p2.AddTreatment(t3)
	s2 := slotAt(t, "2025-05-01", 10)
	_ = p2.AddSlot("2025-05-01", s2)

	_ = e.AddPractitioner(p1)
	_ = e.AddPractitioner(p2)

	got := e.SearchByExpertise("Physio")
	want := []struct {
		p    *Physiotherapist
		name string
		s    *TimeSlot
	}{
		{p1, "T1", s1},
		{p1, "T2", s1},
		{p2, "T3", s2},
	}
	if len(got) != len(want) {
		t.Fatalf("SearchByExpertise() returned %d rows, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Practitioner != w.p || got[i].Treatment.Name != w.name || got[i].Slot != w.s {
			t.Errorf("row %d = (%s, %s, %s), want (%s, %s, %s)", i,
				got[i].Practitioner.FullName, got[i].Treatment.Name, got[i].Slot,
				w.p.FullName, w.name, w.s)
		}
		if got[i].DateKey != "2025-05-01" {
			t.Errorf("row %d date key = %q", i, got[i].DateKey)
		}
	}
}

func TestSearchFiltersTreatmentsByArea(t *testing.T) {
	e := NewEngine()
	p := NewPhysiotherapist(1, "John Smith", "", "")
	p.AddExpertise("Physiotherapy")
	p.AddExpertise("Sports Therapy")
	_ = p.AddTreatment(deepTissue)
	_ = p.AddTreatment(Treatment{Name: "Sports Rehab", ExpertiseArea: "Sports Therapy", DurationMinutes: 45})
	_ = p.AddSlot("2025-05-02", slotAt(t, "2025-05-02", 14))
	_ = p.AddSlot("2025-05-01", slotAt(t, "2025-05-01", 9))
	_ = e.AddPractitioner(p)

	rows := e.SearchByExpertise("Sports Therapy")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.Treatment.Name != "Sports Rehab" {
			t.Errorf("row treatment = %q, want Sports Rehab", r.Treatment.Name)
		}
	}
	if rows[0].DateKey != "2025-05-01" || rows[1].DateKey != "2025-05-02" {
		t.Errorf("rows not in date order: %s, %s", rows[0].DateKey, rows[1].DateKey)
	}

	all := e.SearchByPractitioner("JOHN SMITH")
	if len(all) != 4 {
		t.Errorf("SearchByPractitioner() rows = %d, want 4", len(all))
	}
	if all[0].Treatment.Name != "Deep Tissue Massage" || all[2].Treatment.Name != "Sports Rehab" {
		t.Errorf("practitioner search not grouped by treatment order")
	}
}

func TestSearchEmptyResults(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		rows []SlotOffer
	}{
		{name: "unknown expertise", rows: f.engine.SearchByExpertise("Hydrotherapy")},
		{name: "expertise is case-sensitive", rows: f.engine.SearchByExpertise("physiotherapy")},
		{name: "unknown practitioner", rows: f.engine.SearchByPractitioner("Nobody Here")},
		{name: "partial name", rows: f.engine.SearchByPractitioner("John")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.rows) != 0 {
				t.Errorf("rows = %d, want 0", len(tt.rows))
			}
		})
	}
}
