package journal

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseNumber parses a page number, book index, note index or step.
//
// Only decimal digits are accepted: no sign, no spaces, no empty string.
// Values above 65535 are rejected.
func ParseNumber(input string) (uint16, error) {
	if input == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNumericInput)
	}

	n, err := strconv.ParseUint(input, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is larger than 65535", ErrInvalidNumericInput, input)
		}

		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidNumericInput, input)
	}

	return uint16(n), nil
}
