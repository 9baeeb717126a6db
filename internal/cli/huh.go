package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter renders choices as huh selects and inputs.
type HuhPrompter struct {
	theme *huh.Theme
}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: huh.ThemeDracula()}
}

func (p *HuhPrompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}

func cleanTitle(title string) string {
	return strings.Trim(title, "=- \n")
}

func (p *HuhPrompter) Menu(title string, items []string, back string) (int, error) {
	options := make([]huh.Option[int], 0, len(items)+1)
	for i, item := range items {
		options = append(options, huh.NewOption(item, i+1))
	}
	options = append(options, huh.NewOption(back, 0))

	var choice int
	err := p.run(huh.NewSelect[int]().
		Title(cleanTitle(title)).
		Options(options...).
		Value(&choice))
	return choice, err
}

func (p *HuhPrompter) Pick(heading string, items []string, prompt string) (int, error) {
	options := make([]huh.Option[int], 0, len(items)+1)
	for i, item := range items {
		options = append(options, huh.NewOption(item, i+1))
	}
	options = append(options, huh.NewOption("Cancel", 0))

	title := cleanTitle(heading)
	if title == "" {
		title = strings.TrimSuffix(strings.TrimSpace(prompt), ":")
	}
	var choice int
	err := p.run(huh.NewSelect[int]().
		Title(title).
		Options(options...).
		Height(min(len(options)+2, 15)).
		Value(&choice))
	return choice, err
}

func (p *HuhPrompter) Int(prompt string) (int, error) {
	var raw string
	err := p.run(huh.NewInput().
		Title(strings.TrimSpace(prompt)).
		Value(&raw).
		Validate(func(s string) error {
			if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("enter a whole number")
			}
			return nil
		}))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	return n, nil
}

func (p *HuhPrompter) Text(prompt string) (string, error) {
	var s string
	err := p.run(huh.NewInput().
		Title(strings.TrimSpace(prompt)).
		Value(&s))
	return strings.TrimSpace(s), err
}
