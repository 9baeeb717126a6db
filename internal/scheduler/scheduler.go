package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/constants"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/utils"
)

// Window is a working session in HH:MM wall-clock time.
type Window struct {
	Start string
	End   string
}

type block struct {
	start int // minutes from midnight
	end   int
}

// Scheduler lays out bookable slots over working windows.
type Scheduler struct {
	Windows  []Window
	BlockMin int
	Location *time.Location
	// Weekdays limits generation to the listed days. Empty means every day.
	Weekdays []time.Weekday
}

// New returns a Scheduler with the clinic's default sessions and block length.
func New(loc *time.Location) *Scheduler {
	windows := make([]Window, 0, len(constants.DefaultWorkingWindows))
	for _, w := range constants.DefaultWorkingWindows {
		windows = append(windows, Window{Start: w[0], End: w[1]})
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{Windows: windows, BlockMin: constants.DefaultBlockMin, Location: loc}
}

// DaySlots are the generated slots for one date key.
type DaySlots struct {
	DateKey string
	Slots   []*booking.TimeSlot
}

// GenerateDay creates the slots for one calendar date.
func (s *Scheduler) GenerateDay(day time.Time) (DaySlots, error) {
	day = utils.StartOfDay(day.In(s.Location))
	out := DaySlots{DateKey: utils.DateKey(day)}

	if !s.worksOn(day.Weekday()) {
		return out, nil
	}

	blocks, err := s.freeBlocks()
	if err != nil {
		return out, err
	}
	for _, b := range blocks {
		for start := b.start; start+s.BlockMin <= b.end; start += s.BlockMin {
			slot, err := booking.NewTimeSlot(utils.AtMinutes(day, start), utils.AtMinutes(day, start+s.BlockMin))
			if err != nil {
				return out, err
			}
			out.Slots = append(out.Slots, slot)
		}
	}
	return out, nil
}

// Generate creates slots for days consecutive dates starting at first.
func (s *Scheduler) Generate(first time.Time, days int) ([]DaySlots, error) {
	if days < 0 {
		return nil, fmt.Errorf("invalid day count: %d", days)
	}
	first = utils.StartOfDay(first.In(s.Location))

	out := make([]DaySlots, 0, days)
	for i := 0; i < days; i++ {
		d, err := s.GenerateDay(first.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Fill generates a fresh timetable for p. Each practitioner gets its own slots.
func (s *Scheduler) Fill(p *booking.Physiotherapist, first time.Time, days int) (int, error) {
	generated, err := s.Generate(first, days)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range generated {
		for _, slot := range d.Slots {
			if err := p.AddSlot(d.DateKey, slot); err != nil {
				return n, fmt.Errorf("fill timetable for %s: %w", p.FullName, err)
			}
			n++
		}
	}
	logger.Debug("timetable generated", "practitioner", p.FullName, "days", days, "slots", n)
	return n, nil
}

func (s *Scheduler) worksOn(wd time.Weekday) bool {
	if len(s.Weekdays) == 0 {
		return true
	}
	for _, d := range s.Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// freeBlocks parses the windows, sorts them and rejects malformed or overlapping sessions.
func (s *Scheduler) freeBlocks() ([]block, error) {
	if s.BlockMin <= 0 {
		return nil, fmt.Errorf("invalid block length: %d minutes", s.BlockMin)
	}

	blocks := make([]block, 0, len(s.Windows))
	for _, w := range s.Windows {
		start, err := utils.ParseTimeToMinutes(w.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid window start %q: %w", w.Start, err)
		}
		end, err := utils.ParseTimeToMinutes(w.End)
		if err != nil {
			return nil, fmt.Errorf("invalid window end %q: %w", w.End, err)
		}
		if end <= start {
			return nil, fmt.Errorf("window %s-%s ends before it starts", w.Start, w.End)
		}
		blocks = append(blocks, block{start: start, end: end})
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].start < blocks[j].start
	})
	for i := 1; i < len(blocks); i++ {
		if blocks[i].start < blocks[i-1].end {
			return nil, fmt.Errorf("working windows overlap")
		}
	}
	return blocks, nil
}
