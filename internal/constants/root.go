package constants

const (
	AppName    = "boostphysio"
	ClinicName = "BOOST PHYSIO CLINIC"
	Version    = "v0.3.0"

	// DateFormat is the timetable date key format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the wall-clock format used for working windows (HH:MM)
	TimeFormat = "15:04"

	// SlotRangeFormat renders the start of a slot, e.g. "Thursday 1 May 2025, 09:00".
	// The end time is appended as "-15:04".
	SlotRangeFormat = "Monday 2 January 2006, 15:04"

	// Timetable defaults
	DefaultTimezone      = "Local"
	DefaultTimetableDays = 28
	DefaultBlockMin      = 60
	DefaultLogDir        = "~/.local/state/boostphysio"
	LogFileName          = "boostphysio.log"

	// Environment variable prefix for settings
	EnvPrefix = "BOOSTPHYSIO_"
)

// DefaultWorkingWindows are the morning and afternoon sessions each practitioner works.
var DefaultWorkingWindows = [][2]string{
	{"09:00", "12:00"},
	{"14:00", "17:00"},
}
