// Package threshold validates the classification threshold argument.
package threshold

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// ErrInvalid is returned for any threshold that is not a positive integer.
var ErrInvalid = errors.New("invalid threshold")

// Parse returns the threshold encoded by raw. Only a plain base-10 integer
// literal in the signed 32-bit range and greater than zero is accepted.
func Parse(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalid, raw)
	}

	v, err := safecast.Conv[int32](n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalid, raw)
	}

	if v <= 0 {
		return 0, fmt.Errorf("%w: %q is not positive", ErrInvalid, raw)
	}

	return int64(v), nil
}
