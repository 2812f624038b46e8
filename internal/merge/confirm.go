package merge

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers yes/no questions. The terminal implementation blocks on
// the operator; tests and non-interactive policies substitute their own.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// TerminalConfirmer prompts on Out and reads answers from In. There is no
// default answer: the operator must type an explicit yes or no, and anything
// else re-prompts.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprintf(c.Out, "%s [y/n]: ", prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("reading confirmation: %w", err)
			}
			return false, fmt.Errorf("reading confirmation: input closed")
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// StaticConfirmer always answers the same way. Useful for --no-input style
// automation and tests.
type StaticConfirmer struct {
	Answer bool
}

func (c *StaticConfirmer) Confirm(string) (bool, error) {
	return c.Answer, nil
}
