package system

import (
	"fmt"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/cli"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	// Check 1: Clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		ctx.Printf("❌ Clock/timezone: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 2: Working windows produce slots
	if err := checkWorkingWindows(ctx); err != nil {
		ctx.Printf("❌ Working windows: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Working windows: OK\n")
	}

	// Check 3: Timetables present (warning only)
	if err := checkTimetables(ctx); err != nil {
		ctx.Printf("⚠ Timetables present: WARNING\n")
		ctx.Printf("   %v\n", err)
	} else {
		ctx.Printf("✓ Timetables present: OK\n")
	}

	// Check 4: Registry invariants
	result := validation.New().Validate(ctx.Engine)
	if result.HasConflicts() {
		ctx.Printf("❌ Registry invariants: FAIL\n")
		ctx.Printf("%s\n", result.FormatReport())
		logger.Warn("registry invariants violated", "conflicts", len(result.Conflicts))
		hasError = true
	} else {
		ctx.Printf("✓ Registry invariants: OK\n")
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	loc, err := ctx.Config.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkWorkingWindows(ctx *cli.Context) error {
	if ctx.Scheduler == nil {
		return fmt.Errorf("no scheduler configured")
	}
	day, err := ctx.Scheduler.GenerateDay(time.Date(2025, 5, 5, 0, 0, 0, 0, ctx.Scheduler.Location))
	if err != nil {
		return err
	}
	if len(day.Slots) == 0 && len(ctx.Scheduler.Weekdays) == 0 {
		return fmt.Errorf("working windows yield no slots")
	}
	return nil
}

func checkTimetables(ctx *cli.Context) error {
	practitioners := ctx.Engine.Practitioners()
	if len(practitioners) == 0 {
		return fmt.Errorf("no physiotherapists registered")
	}
	for _, p := range practitioners {
		if p.SlotCount() == 0 {
			return fmt.Errorf("%s has no time slots", p.FullName)
		}
	}
	return nil
}
