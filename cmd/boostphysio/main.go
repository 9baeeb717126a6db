package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/cli"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/cli/search"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/cli/system"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/config"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/constants"
	errs "github.com/Aziz2597/Boost-Physio-Booking-App/internal/errors"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/scheduler"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/seed"
)

var CLI struct {
	Version       kong.VersionFlag
	config.Config `embed:""`

	Menu      cli.MenuCmd         `cmd:"" help:"Run the interactive booking menu." default:"1"`
	Report    cli.ReportCmd       `cmd:"" help:"Print the end of term report."`
	Search    search.Cmd          `cmd:"" help:"Search available appointment slots."`
	Doctor    system.DoctorCmd    `cmd:"" help:"Check the clinic registry for inconsistencies."`
	Timetable system.TimetableCmd `cmd:"" help:"Browse practitioner timetables."`
}

func main() {
	if err := config.LoadDotenv(); err != nil {
		errs.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Boost Physio Clinic appointment booking"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
		config.Vars(),
	)

	cfg := CLI.Config
	if err := cfg.Validate(); err != nil {
		errs.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, Dir: cfg.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx, err := setup(cfg)
	if err != nil {
		errs.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}

func setup(cfg config.Config) (*cli.Context, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	weekdays, err := cli.ParseWeekdays(cfg.Weekdays)
	if err != nil {
		return nil, err
	}
	sched := scheduler.New(loc)
	sched.Weekdays = weekdays

	engine := booking.NewEngine()

	if cfg.NoSeed {
		if _, err := seed.FakePatients(engine, cfg.FakePatients, cfg.FakeSeed); err != nil {
			return nil, err
		}
	} else {
		first, err := cfg.FirstDay(time.Now())
		if err != nil {
			return nil, err
		}
		if _, err := seed.Clinic(engine, seed.Options{
			FirstDay:     first,
			Days:         cfg.Days,
			Scheduler:    sched,
			FakePatients: cfg.FakePatients,
			FakeSeed:     cfg.FakeSeed,
		}); err != nil {
			return nil, fmt.Errorf("load sample clinic: %w", err)
		}
	}

	return &cli.Context{
		Engine:    engine,
		Scheduler: sched,
		Config:    cfg,
	}, nil
}
