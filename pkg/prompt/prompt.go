// Package prompt implements the interactive question/answer channel used
// during deploys. A Prompter never blocks in non-interactive mode; callers
// check Interactive() and decide the headless fallback themselves.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ErrNotInteractive is returned when a prompt is requested on a
// non-interactive channel.
var ErrNotInteractive = errors.New("prompt requires an interactive terminal")

// Prompter asks yes/no and free-form questions over an input/output pair.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	width       int
}

// New creates a prompter over explicit streams.
func New(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		width:       80,
	}
}

// NewTerminal creates a prompter bound to the process terminal, detecting
// interactivity from stdin and stdout.
func NewTerminal() *Prompter {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	p := New(os.Stdin, os.Stdout, interactive)
	if w := pterm.GetTerminalWidth(); w > 0 {
		p.width = w
	}
	return p
}

// Interactive reports whether prompts can be answered.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// Width returns the output width in columns.
func (p *Prompter) Width() int {
	return p.width
}

// Confirm asks a yes/no question. An empty answer yields def; anything
// other than y/yes/n/no re-asks the question.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	if !p.interactive {
		return false, ErrNotInteractive
	}

	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(p.out, "%s %s: ", question, hint)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Ask asks a free-form question; an empty answer yields def.
func (p *Prompter) Ask(question, def string) (string, error) {
	if !p.interactive {
		return "", ErrNotInteractive
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s (%s): ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
