package cli

import (
	"fmt"
	"strings"

	"github.com/bw-notes/bw/internal/journal"
)

// requireArgs checks that args holds exactly one value per name.
func requireArgs(args []string, names ...string) error {
	if len(args) < len(names) {
		return fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(names[len(args):], ", "))
	}

	if len(args) > len(names) {
		return fmt.Errorf("%w: %s", ErrTooManyArguments, strings.Join(args[len(names):], " "))
	}

	return nil
}

// parseNumberArg parses a numeric positional argument, naming it in errors.
func parseNumberArg(name, value string) (uint16, error) {
	n, err := journal.ParseNumber(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return n, nil
}

// parseIndexArg parses a book index argument.
func parseIndexArg(value string) (int, error) {
	n, err := parseNumberArg("index", value)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
