package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/constants"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/utils"
)

// Config holds the global flags. Every flag falls back to a BOOSTPHYSIO_* environment variable.
type Config struct {
	Debug        bool   `help:"Enable debug logging to stderr and the log file." env:"BOOSTPHYSIO_DEBUG"`
	LogDir       string `help:"Directory for the rotating log file." type:"path" default:"${log_dir}" env:"BOOSTPHYSIO_LOG_DIR"`
	Timezone     string `help:"IANA timezone of the clinic calendar." default:"${timezone}" env:"BOOSTPHYSIO_TIMEZONE"`
	StartDate    string `help:"First timetable day (YYYY-MM-DD). Defaults to today." env:"BOOSTPHYSIO_START_DATE"`
	Days         int    `help:"Number of timetable days to generate." default:"${days}" env:"BOOSTPHYSIO_DAYS"`
	Weekdays     string `help:"Comma-separated working days (e.g. mon,tue,wed). Empty means every day." env:"BOOSTPHYSIO_WEEKDAYS"`
	FakePatients int    `help:"Extra generated patients added to the sample clinic." default:"0" env:"BOOSTPHYSIO_FAKE_PATIENTS"`
	FakeSeed     uint64 `help:"Seed for generated patients (0 picks one at random)." default:"0" env:"BOOSTPHYSIO_FAKE_SEED"`
	NoSeed       bool   `help:"Start with an empty clinic."`
	Plain        bool   `help:"Use line-based prompts even on a terminal." env:"BOOSTPHYSIO_PLAIN"`
}

// Default returns the settings used when no flags or environment are given.
func Default() Config {
	return Config{
		LogDir:   constants.DefaultLogDir,
		Timezone: constants.DefaultTimezone,
		Days:     constants.DefaultTimetableDays,
	}
}

// Vars exposes Default to the kong default tags.
func Vars() kong.Vars {
	d := Default()
	return kong.Vars{
		"log_dir":  d.LogDir,
		"timezone": d.Timezone,
		"days":     strconv.Itoa(d.Days),
	}
}

// LoadDotenv loads environment variables from the given files (".env" when none are named).
// Missing files are ignored; variables already set are not overridden.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Validate checks the settings that kong cannot check by type alone.
func (c *Config) Validate() error {
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone: %q", c.Timezone)
	}
	if c.StartDate != "" && !utils.ValidateDateKey(c.StartDate) {
		return fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", c.StartDate)
	}
	if c.Days < 0 {
		return fmt.Errorf("days must not be negative, got %d", c.Days)
	}
	if c.FakePatients < 0 {
		return fmt.Errorf("fake patients must not be negative, got %d", c.FakePatients)
	}
	return nil
}

// Location resolves the clinic calendar timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

// FirstDay returns the first timetable day: StartDate if set, otherwise today in the clinic zone.
func (c *Config) FirstDay(now time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	if c.StartDate == "" {
		return utils.StartOfDay(now.In(loc)), nil
	}
	return utils.ParseDateInLocation(c.StartDate, loc)
}
