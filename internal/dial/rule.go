package dial

import (
	"fmt"
	"strings"
)

// Rule selects how hits are counted.
type Rule int

const (
	// Coarse counts a hit when a command ends on 0.
	Coarse Rule = iota + 1
	// Fine counts a hit for every unit step that lands on 0.
	Fine
)

// Rules returns every rule in reporting order.
func Rules() []Rule {
	return []Rule{Coarse, Fine}
}

func (r Rule) String() string {
	switch r {
	case Coarse:
		return "coarse"
	case Fine:
		return "fine"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule accepts a rule name, case-insensitively. "a" and "part1" are
// aliases of coarse, "b" and "part2" of fine.
func ParseRule(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "coarse", "a", "part1":
		return Coarse, nil
	case "fine", "b", "part2":
		return Fine, nil
	default:
		return 0, fmt.Errorf("unknown rule %q: must be 'coarse' or 'fine'", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if r != Coarse && r != Fine {
		return nil, fmt.Errorf("unknown rule %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(b []byte) error {
	parsed, err := ParseRule(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
