package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/cli"
)

const maxSuggestions = 3

type Cmd struct {
	Expertise    ExpertiseCmd    `cmd:"" help:"List available slots for an expertise area."`
	Practitioner PractitionerCmd `cmd:"" help:"List available slots for a physiotherapist."`
}

type ExpertiseCmd struct {
	Area string `arg:"" help:"Expertise area, e.g. Physiotherapy."`
}

func (cmd *ExpertiseCmd) Run(ctx *cli.Context) error {
	offers := ctx.Engine.SearchByExpertise(cmd.Area)
	if len(offers) == 0 {
		ctx.Printf("No available slots found for %s\n", cmd.Area)
		printHints(ctx, cmd.Area, ctx.Engine.ExpertiseAreas())
		return nil
	}
	printOffers(ctx, offers)
	return nil
}

type PractitionerCmd struct {
	Name string `arg:"" help:"Full name of the physiotherapist (case-insensitive)."`
}

func (cmd *PractitionerCmd) Run(ctx *cli.Context) error {
	offers := ctx.Engine.SearchByPractitioner(cmd.Name)
	if len(offers) > 0 {
		printOffers(ctx, offers)
		return nil
	}

	if _, ok := ctx.Engine.PractitionerByName(cmd.Name); ok {
		ctx.Printf("No available slots found for %s\n", cmd.Name)
		return nil
	}
	ctx.Printf("Physiotherapist not found: %s\n", cmd.Name)

	practitioners := ctx.Engine.Practitioners()
	names := make([]string, len(practitioners))
	for i, p := range practitioners {
		names[i] = p.FullName
	}
	printHints(ctx, cmd.Name, names)
	return nil
}

func printOffers(ctx *cli.Context, offers []booking.SlotOffer) {
	for i, o := range offers {
		ctx.Printf("%d. %s\n", i+1, cli.FormatOffer(o))
	}
}

func printHints(ctx *cli.Context, query string, candidates []string) {
	hints := Suggest(query, candidates)
	if len(hints) == 0 {
		return
	}
	ctx.Printf("Did you mean: %s?\n", strings.Join(hints, ", "))
}

// Suggest returns up to three candidates that fuzzy-match query, best first.
func Suggest(query string, candidates []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	// fuzzy matching is case-sensitive on the pattern, so compare lowered copies
	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}
	matches := fuzzy.Find(strings.ToLower(query), lowered)

	var out []string
	for _, m := range matches {
		out = append(out, candidates[m.Index])
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
