package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/config"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/scheduler"
)

type Context struct {
	Engine    *booking.Engine
	Scheduler *scheduler.Scheduler
	Config    config.Config

	In  io.Reader
	Out io.Writer

	// Prompter overrides terminal detection when set.
	Prompter Prompter
}

func (c *Context) stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Context) stdin() io.Reader {
	if c.In != nil {
		return c.In
	}
	return os.Stdin
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.stdout(), format, args...)
}

// Println writes a line to the command output.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.stdout(), args...)
}

// Writer is the command output.
func (c *Context) Writer() io.Writer {
	return c.stdout()
}

// ParseWeekdays parses a comma-separated list of weekdays. An empty string means every day.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// FormatOffer renders a search row as "<practitioner> - <treatment> - <range>".
func FormatOffer(o booking.SlotOffer) string {
	return fmt.Sprintf("%s - %s - %s", o.Practitioner.FullName, o.Treatment.Name, o.Slot.FormattedRange())
}
