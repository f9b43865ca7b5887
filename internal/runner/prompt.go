// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-scraper/internal/store"
)

// DefaultCount is used when the requested result count is not an integer.
const DefaultCount = 5

const (
	keywordPrompt = "Enter a keyword to search for research papers: "
	countPrompt   = "How many papers do you want to fetch? (e.g., 5, 10): "
	modePrompt    = "Do you want to overwrite the existing JSON or append to it? (overwrite/append): "

	countWarning = "Invalid number. Using default (5)."
	modeWarning  = "Invalid option. Defaulting to 'overwrite'"
)

// Params are the validated inputs of one run.
type Params struct {
	Keyword string
	Count   int
	Mode    store.Mode
}

// Answers pre-fills prompts. A nil field is asked interactively.
type Answers struct {
	Keyword *string
	Count   *string
	Mode    *string
}

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the next input line without its line
// terminator. Input that ends without a newline is still returned; input
// that is already exhausted is an error.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseCount parses a result count. It reports false when s is not an integer.
func ParseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultCount, false
	}
	return n, true
}

// Collect gathers keyword, count and mode, asking for any answer not preset.
// An invalid count or mode is replaced by its default with a warning on the
// prompter's output; neither is fatal.
func (p *Prompter) Collect(preset Answers) (Params, error) {
	keyword, err := p.answer(preset.Keyword, keywordPrompt)
	if err != nil {
		return Params{}, err
	}

	rawCount, err := p.answer(preset.Count, countPrompt)
	if err != nil {
		return Params{}, err
	}
	count, ok := ParseCount(rawCount)
	if !ok {
		fmt.Fprintln(p.out, countWarning)
	}

	rawMode, err := p.answer(preset.Mode, modePrompt)
	if err != nil {
		return Params{}, err
	}
	mode, ok := store.ParseMode(rawMode)
	if !ok {
		fmt.Fprintln(p.out, modeWarning)
	}

	return Params{Keyword: keyword, Count: count, Mode: mode}, nil
}

func (p *Prompter) answer(preset *string, question string) (string, error) {
	if preset != nil {
		return *preset, nil
	}
	return p.Ask(question)
}
