package chooser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/topix-labs/topix/internal/topic"
)

// Menu presents choices as a numbered list and reads the answer line by line.
type Menu struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Menu reading answers from r and writing the list to w.
func New(r io.Reader, w io.Writer) *Menu {
	return &Menu{reader: bufio.NewReader(r), w: w}
}

// Choose prints the list and returns the ID of the selected choice. Answering
// 0, "q", or closing the input cancels with topic.ErrCancelled. Invalid
// answers are reported and the question is asked again.
func (m *Menu) Choose(ctx context.Context, choices []topic.Choice, prompt string, defaultIndex int) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices to present")
	}
	if defaultIndex < 1 || defaultIndex > len(choices) {
		defaultIndex = 0
	}

	fmt.Fprintf(m.w, "\n%s\n", prompt)
	fmt.Fprintf(m.w, "  [%*d] Cancel\n", width(len(choices)), 0)
	for i, c := range choices {
		marker := ""
		if i+1 == defaultIndex {
			marker = " *"
		}
		fmt.Fprintf(m.w, "  [%*d] %s%s\n", width(len(choices)), i+1, Label(c), marker)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if defaultIndex > 0 {
			fmt.Fprintf(m.w, "Enter number [0-%d] (default %d): ", len(choices), defaultIndex)
		} else {
			fmt.Fprintf(m.w, "Enter number [0-%d]: ", len(choices))
		}

		line, err := m.reader.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return "", fmt.Errorf("reading selection: %w", err)
		}
		if eof && line == "" {
			fmt.Fprintln(m.w)
			return "", topic.ErrCancelled
		}

		answer := strings.TrimSpace(line)
		num, ok := parseAnswer(answer, defaultIndex, len(choices))
		if !ok {
			fmt.Fprintf(m.w, "Invalid selection %q: choose 0-%d\n", answer, len(choices))
			if eof {
				return "", topic.ErrCancelled
			}
			continue
		}
		if num == 0 {
			return "", topic.ErrCancelled
		}
		return choices[num-1].ID, nil
	}
}

// Label formats a choice as "description (identifier)".
func Label(c topic.Choice) string {
	if c.Label == "" {
		return c.ID
	}
	return fmt.Sprintf("%s (%s)", c.Label, c.ID)
}

// parseAnswer maps a trimmed answer to a menu number. It reports false for
// anything that is not a valid entry.
func parseAnswer(answer string, defaultIndex, n int) (int, bool) {
	switch strings.ToLower(answer) {
	case "":
		return defaultIndex, defaultIndex > 0
	case "q", "quit":
		return 0, true
	}
	num, err := strconv.Atoi(answer)
	if err != nil || num < 0 || num > n {
		return 0, false
	}
	return num, true
}

// width returns the number of digits needed to print n.
func width(n int) int {
	return len(strconv.Itoa(n))
}

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
