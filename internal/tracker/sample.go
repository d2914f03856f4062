package tracker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadSample is returned for lines that are neither a number nor an
// absence marker.
var ErrBadSample = errors.New("tracker: bad sample")

// ParseSample parses one feed line. Accepted forms are a bare number
// ("0.42") or a keyed one ("x=0.42"). Empty lines, "none" and "-" mean the
// tracker currently sees no hand and return ok == false.
// Values outside [0, 1] are clamped.
func ParseSample(line string) (x float64, ok bool, err error) {
	s := strings.ToLower(strings.TrimSpace(line))
	s = strings.TrimSpace(strings.TrimPrefix(s, "x="))

	switch s {
	case "", "none", "-":
		return 0, false, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadSample, line)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%w: %q is not finite", ErrBadSample, line)
	}

	return min(max(v, 0), 1), true, nil
}
