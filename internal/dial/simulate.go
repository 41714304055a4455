package dial

import "fmt"

// Event describes the dial state right after a command has been applied.
type Event struct {
	Index    int // zero-based position of the command in the sequence
	Command  Command
	Position int
	Hits     uint64 // running total including this command
}

// Option configures a Count call.
type Option func(*options)

type options struct {
	observe func(Event)
}

// WithObserver registers fn to be called after every command.
func WithObserver(fn func(Event)) Option {
	return func(o *options) {
		o.observe = fn
	}
}

// stepFunc applies one command from pos and returns the new position and
// the hits it produced.
type stepFunc func(pos int, c Command) (int, uint64)

func coarseStep(pos int, c Command) (int, uint64) {
	pos = Move(pos, c.Delta())
	if pos == 0 {
		return pos, 1
	}
	return pos, 0
}

// fineStep counts every unit step landing on 0. A full revolution visits
// every position exactly once and ends where it started, so each one adds
// exactly one hit; only the remainder is walked step by step.
func fineStep(pos int, c Command) (int, uint64) {
	hits := c.Steps / Size
	unit := c.Direction.Sign()
	for i := uint64(0); i < c.Steps%Size; i++ {
		pos = Move(pos, unit)
		if pos == 0 {
			hits++
		}
	}
	return pos, hits
}

func stepFor(rule Rule) (stepFunc, error) {
	switch rule {
	case Coarse:
		return coarseStep, nil
	case Fine:
		return fineStep, nil
	default:
		return nil, fmt.Errorf("dial: unknown rule %s", rule)
	}
}

// Count applies cmds in order from start and returns the number of hits
// under rule. start is normalized first. A command with zero steps or an
// unknown direction fails the whole run; no partial count is returned.
func Count(rule Rule, cmds []Command, start int, opts ...Option) (uint64, error) {
	step, err := stepFor(rule)
	if err != nil {
		return 0, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pos := Normalize(start)
	var hits uint64
	for i, c := range cmds {
		if err := validate(c); err != nil {
			return 0, err
		}
		var n uint64
		pos, n = step(pos, c)
		hits += n
		if o.observe != nil {
			o.observe(Event{Index: i, Command: c, Position: pos, Hits: hits})
		}
	}
	return hits, nil
}

func validate(c Command) error {
	if c.Direction.Sign() == 0 {
		return &Error{Kind: InvalidFormat, Msg: fmt.Sprintf("invalid direction %d", int(c.Direction))}
	}
	if c.Steps == 0 {
		return &Error{Kind: InvalidSteps, Msg: "magnitude must be positive"}
	}
	return nil
}

// Simulate parses lines and counts hits under rule starting from start.
// Parse failures are returned unchanged.
func Simulate(lines []string, start int, rule Rule) (uint64, error) {
	cmds, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return Count(rule, cmds, start)
}
