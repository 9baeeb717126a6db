package booking

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/utils"
)

// Physiotherapist is a practitioner with expertise areas, offered treatments and a dated timetable.
type Physiotherapist struct {
	Person

	expertise  []string
	treatments []Treatment
	timetable  map[string][]*TimeSlot
}

func NewPhysiotherapist(id int, fullName, address, phone string) *Physiotherapist {
	return &Physiotherapist{
		Person:    Person{ID: id, FullName: fullName, Address: address, Phone: phone},
		timetable: make(map[string][]*TimeSlot),
	}
}

func (p *Physiotherapist) String() string {
	return p.Person.String() + ", Expertise: " + strings.Join(p.expertise, ", ")
}

// AddExpertise appends area unless it is blank or already held.
func (p *Physiotherapist) AddExpertise(area string) {
	if strings.TrimSpace(area) == "" || p.HasExpertise(area) {
		return
	}
	p.expertise = append(p.expertise, area)
}

func (p *Physiotherapist) HasExpertise(area string) bool {
	return slices.Contains(p.expertise, area)
}

// ExpertiseAreas returns the areas in the order they were added.
func (p *Physiotherapist) ExpertiseAreas() []string {
	return slices.Clone(p.expertise)
}

// AddTreatment offers t. Its expertise area must already be held.
func (p *Physiotherapist) AddTreatment(t Treatment) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !p.HasExpertise(t.ExpertiseArea) {
		return fmt.Errorf("%w: %s does not hold %q required by %q",
			ErrTreatmentNotInExpertise, p.FullName, t.ExpertiseArea, t.Name)
	}
	p.treatments = append(p.treatments, t)
	return nil
}

func (p *Physiotherapist) Treatments() []Treatment {
	return slices.Clone(p.treatments)
}

// TreatmentByName finds an offered treatment by exact name.
func (p *Physiotherapist) TreatmentByName(name string) (Treatment, bool) {
	for _, t := range p.treatments {
		if t.Name == name {
			return t, true
		}
	}
	return Treatment{}, false
}

func (p *Physiotherapist) offers(t Treatment) bool {
	return slices.ContainsFunc(p.treatments, t.Equal)
}

// AddSlot files slot under dateKey (YYYY-MM-DD), which must be the slot's start date.
// A slot belongs to one practitioner only.
func (p *Physiotherapist) AddSlot(dateKey string, slot *TimeSlot) error {
	if slot == nil {
		return fmt.Errorf("%w: nil slot", ErrInvalidSlot)
	}
	if !utils.ValidateDateKey(dateKey) {
		return fmt.Errorf("%w: %q", ErrInvalidDateKey, dateKey)
	}
	if key := utils.DateKey(slot.start); key != dateKey {
		return fmt.Errorf("%w: %q does not match slot date %s", ErrInvalidDateKey, dateKey, key)
	}
	if slot.owner != nil {
		return fmt.Errorf("%w: %s is held by %s", ErrSlotAlreadyOwned, slot.FormattedRange(), slot.owner.FullName)
	}
	slot.owner = p
	slot.dateKey = dateKey
	p.timetable[dateKey] = append(p.timetable[dateKey], slot)
	return nil
}

// OwnsSlot reports whether slot is filed in p's timetable.
func (p *Physiotherapist) OwnsSlot(slot *TimeSlot) bool {
	if slot == nil || slot.owner != p {
		return false
	}
	return slices.Contains(p.timetable[slot.dateKey], slot)
}

// AvailableSlotsOn returns the available slots on dateKey in declared order.
func (p *Physiotherapist) AvailableSlotsOn(dateKey string) []*TimeSlot {
	var out []*TimeSlot
	for _, s := range p.timetable[dateKey] {
		if s.available {
			out = append(out, s)
		}
	}
	return out
}

// TimetableDay is one date of a practitioner's timetable.
type TimetableDay struct {
	DateKey string
	Slots   []*TimeSlot
}

// Timetable returns every date in ascending order; slots keep insertion order.
func (p *Physiotherapist) Timetable() []TimetableDay {
	keys := make([]string, 0, len(p.timetable))
	for k := range p.timetable {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	days := make([]TimetableDay, 0, len(keys))
	for _, k := range keys {
		days = append(days, TimetableDay{DateKey: k, Slots: slices.Clone(p.timetable[k])})
	}
	return days
}

// SlotCount is the number of slots across all dates.
func (p *Physiotherapist) SlotCount() int {
	n := 0
	for _, slots := range p.timetable {
		n += len(slots)
	}
	return n
}

// PractitionerRegistry holds practitioners in insertion order.
type PractitionerRegistry struct {
	items []*Physiotherapist
}

// Add appends p without checking for a duplicate id.
func (r *PractitionerRegistry) Add(p *Physiotherapist) {
	r.items = append(r.items, p)
}

func (r *PractitionerRegistry) All() []*Physiotherapist {
	return slices.Clone(r.items)
}

func (r *PractitionerRegistry) ByID(id int) (*Physiotherapist, bool) {
	for _, p := range r.items {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ByNameCI matches the full name case-insensitively.
func (r *PractitionerRegistry) ByNameCI(name string) (*Physiotherapist, bool) {
	for _, p := range r.items {
		if strings.EqualFold(p.FullName, name) {
			return p, true
		}
	}
	return nil, false
}

// ByExpertise returns practitioners holding area (case-sensitive) in registry order.
func (r *PractitionerRegistry) ByExpertise(area string) []*Physiotherapist {
	var out []*Physiotherapist
	for _, p := range r.items {
		if p.HasExpertise(area) {
			out = append(out, p)
		}
	}
	return out
}
