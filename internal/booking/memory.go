package booking

import (
	"fmt"
	"slices"
)

// MemoryPatients is a map-backed PatientRepository. Reads return copies.
type MemoryPatients struct {
	byID  map[int]Patient
	order []int
}

func NewMemoryPatients() *MemoryPatients {
	return &MemoryPatients{byID: make(map[int]Patient)}
}

func (m *MemoryPatients) Add(p Patient) error {
	if _, ok := m.byID[p.ID]; ok {
		return fmt.Errorf("%w: patient %d", ErrDuplicateID, p.ID)
	}
	m.byID[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *MemoryPatients) Remove(id int) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("%w: patient %d", ErrNotFound, id)
	}
	delete(m.byID, id)
	m.order = slices.DeleteFunc(m.order, func(v int) bool { return v == id })
	return nil
}

func (m *MemoryPatients) ByID(id int) (Patient, error) {
	p, ok := m.byID[id]
	if !ok {
		return Patient{}, fmt.Errorf("%w: patient %d", ErrNotFound, id)
	}
	return p, nil
}

func (m *MemoryPatients) All() []Patient {
	out := make([]Patient, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// MemoryAppointments is a map-backed AppointmentRepository. Reads return copies.
type MemoryAppointments struct {
	byID map[int]*Appointment
	ids  []int
}

func NewMemoryAppointments() *MemoryAppointments {
	return &MemoryAppointments{byID: make(map[int]*Appointment)}
}

func (m *MemoryAppointments) Put(a Appointment) error {
	if _, ok := m.byID[a.ID]; ok {
		return fmt.Errorf("%w: appointment %d", ErrDuplicateID, a.ID)
	}
	m.byID[a.ID] = &a
	i, _ := slices.BinarySearch(m.ids, a.ID)
	m.ids = slices.Insert(m.ids, i, a.ID)
	return nil
}

func (m *MemoryAppointments) ByID(id int) (Appointment, error) {
	a, ok := m.byID[id]
	if !ok {
		return Appointment{}, fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	return *a, nil
}

func (m *MemoryAppointments) All() []Appointment {
	out := make([]Appointment, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, *m.byID[id])
	}
	return out
}

func (m *MemoryAppointments) UpdateStatus(id int, from, to Status) error {
	a, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	if a.Status != from {
		return fmt.Errorf("%w: appointment %d is %s, expected %s", ErrIllegalStateTransition, id, a.Status, from)
	}
	a.Status = to
	return nil
}
