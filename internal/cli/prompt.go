package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrInvalidInput is returned when a whole number was expected but something else was typed.
var ErrInvalidInput = errors.New("invalid input: expected a whole number")

// Prompter reads the operator's choices. Implementations return io.EOF when input ends
// or the operator aborts.
type Prompter interface {
	// Menu shows a titled list numbered from 1, with back as option 0, and returns the choice.
	Menu(title string, items []string, back string) (int, error)
	// Pick lists items numbered from 1 and returns the chosen number; 0 or out of range means none.
	Pick(heading string, items []string, prompt string) (int, error)
	Int(prompt string) (int, error)
	Text(prompt string) (string, error)
}

// Prompt returns the configured prompter: huh forms on an interactive terminal,
// numbered lines otherwise or when --plain is set.
func (c *Context) Prompt() Prompter {
	if c.Prompter != nil {
		return c.Prompter
	}
	if !c.Config.Plain && c.In == nil && c.Out == nil && interactive() {
		c.Prompter = NewHuhPrompter()
	} else {
		c.Prompter = NewLinePrompter(c.stdin(), c.stdout())
	}
	return c.Prompter
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// LinePrompter prints numbered choices and reads one line per answer.
type LinePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewScanner(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *LinePrompter) Menu(title string, items []string, back string) (int, error) {
	fmt.Fprintf(p.out, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, item)
	}
	fmt.Fprintf(p.out, "0. %s\n", back)
	return p.Int("Enter your choice: ")
}

func (p *LinePrompter) Pick(heading string, items []string, prompt string) (int, error) {
	if heading != "" {
		fmt.Fprintln(p.out, heading)
	}
	for i, item := range items {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, item)
	}
	return p.Int(prompt)
}

func (p *LinePrompter) Int(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}
	return n, nil
}

func (p *LinePrompter) Text(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}
