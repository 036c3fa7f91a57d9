// Package shell renders the terminal menus and collects input. It owns
// every retry loop; the core services only return structured outcomes.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads one line of user input at a time. End of input
// surfaces as ok=false, which callers treat as cancellation.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter constructs a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints prompt and returns the next input line.
func (p *Prompter) Ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// Validator checks a candidate answer.
type Validator func(candidate string) error

// Question is one entry of a questionnaire. A nil Validate accepts
// anything; Hint is printed on each rejection.
type Question struct {
	Label    string
	Validate Validator
	Hint     string
}

// OptionsScreen presents a numbered option list and returns the chosen
// option string.
type OptionsScreen struct {
	Title   string
	Options []string
}

// Display renders the screen and collects a selection, re-prompting on
// invalid input until a valid number arrives or input ends.
func (s OptionsScreen) Display(p *Prompter) (string, bool) {
	fmt.Fprintf(p.out, "\n----------------\n%s\n----------------\n\n", s.Title)
	for i, option := range s.Options {
		fmt.Fprintf(p.out, "Enter %d to %s\n", i+1, option)
	}
	for {
		raw, ok := p.Ask("\nEnter the number of your choice: ")
		if !ok {
			return "", false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if choice < 1 || choice > len(s.Options) {
			fmt.Fprintf(p.out, "Invalid choice. Please enter a number between 1 and %d\n", len(s.Options))
			continue
		}
		return s.Options[choice-1], true
	}
}

// QuestionnaireScreen asks its questions in order and returns the
// answers keyed by label.
type QuestionnaireScreen struct {
	Title     string
	Questions []Question
}

// Display collects an answer per question, re-asking until the
// validator accepts. End of input cancels the whole questionnaire.
func (s QuestionnaireScreen) Display(p *Prompter) (map[string]string, bool) {
	answers := make(map[string]string, len(s.Questions))
	for _, q := range s.Questions {
		for {
			raw, ok := p.Ask(fmt.Sprintf("\nPlease enter %s: ", q.Label))
			if !ok {
				return nil, false
			}
			if q.Validate != nil {
				if err := q.Validate(raw); err != nil {
					if q.Hint != "" {
						fmt.Fprintln(p.out, q.Hint)
					}
					continue
				}
			}
			answers[q.Label] = raw
			break
		}
	}
	return answers, true
}
