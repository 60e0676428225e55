package cli

import (
	"fmt"
	"strings"
)

// AmbiguousCommandError is returned when a prefix matches more than one command.
type AmbiguousCommandError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousCommandError) Error() string {
	return fmt.Sprintf("ambiguous command %q matches: %s", e.Prefix, strings.Join(e.Matches, ", "))
}

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an error if ambiguous or no match.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(prefix)

	for _, cmd := range commands {
		if strings.ToLower(cmd) == prefix {
			return cmd, nil
		}
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd), prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousCommandError{Prefix: prefix, Matches: matches}
	}
}

// ExpandCommand rewrites an abbreviated subcommand in args[0] to its full
// name, so "cart l" runs "cart list". Flags and words that match no command
// are left for cobra to report.
func ExpandCommand(args []string, commands []string) ([]string, error) {
	if len(args) == 0 || args[0] == "" || strings.HasPrefix(args[0], "-") {
		return args, nil
	}

	name, err := MatchCommand(args[0], commands)
	if err != nil {
		if _, ok := err.(*AmbiguousCommandError); ok {
			return nil, err
		}
		return args, nil
	}

	expanded := make([]string, len(args))
	copy(expanded, args)
	expanded[0] = name
	return expanded, nil
}
