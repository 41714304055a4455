package dial

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Command is one rotation instruction. Steps is always > 0 for commands
// produced by ParseCommand.
type Command struct {
	Direction Direction
	Steps     uint64
}

// Delta returns the signed displacement of the command reduced modulo Size.
// Moving by Delta lands on the same position as moving by the full
// magnitude, and the reduction keeps huge magnitudes from overflowing int.
func (c Command) Delta() int {
	return c.Direction.Sign() * int(c.Steps%Size)
}

// String renders the command in input form, e.g. "L68".
func (c Command) String() string {
	return c.Direction.String() + strconv.FormatUint(c.Steps, 10)
}

// ParseCommand parses a single line such as "R14" or " l5 ".
func ParseCommand(line string) (Command, error) {
	s := strings.TrimSpace(line)

	if s == "" {
		return Command{}, &Error{Kind: InvalidFormat, Msg: "empty line"}
	}
	if len(s) < 2 {
		return Command{}, &Error{Kind: InvalidFormat, Msg: "line too short"}
	}

	dir, ok := directionOf(s[0])
	if !ok {
		r, _ := utf8.DecodeRuneInString(s)
		return Command{}, &Error{Kind: InvalidFormat, Msg: fmt.Sprintf("invalid direction %q", r)}
	}

	steps, err := strconv.ParseUint(s[1:], 10, 64)
	if err != nil {
		return Command{}, &Error{Kind: ParseError, Msg: fmt.Sprintf("magnitude %q", s[1:]), Err: err}
	}
	if steps == 0 {
		return Command{}, &Error{Kind: InvalidSteps, Msg: "magnitude must be positive"}
	}

	return Command{Direction: dir, Steps: steps}, nil
}

// Parse parses every non-blank line in order. Whitespace-only lines are
// skipped. The first malformed line aborts parsing; the returned *Error
// carries its 1-based line number and raw text.
func Parse(lines []string) ([]Command, error) {
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			perr := err.(*Error)
			perr.Line = i + 1
			perr.Text = line
			return nil, perr
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
