package program

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidWorkoutKey is returned for strings that are not a
// well-formed synthetic workout key.
var ErrInvalidWorkoutKey = errors.New("invalid workout key")

const workoutKeyPrefix = "w:"

// EncodeWorkoutKey builds the synthetic key addressing a single
// exercise inside a program document: w:<weekIndex>-<dayIndex>-<workoutIndex>.
func EncodeWorkoutKey(weekIndex, dayIndex, workoutIndex int) string {
	return fmt.Sprintf("%s%d-%d-%d", workoutKeyPrefix, weekIndex, dayIndex, workoutIndex)
}

// DecodeWorkoutKey parses a synthetic workout key back into its three
// index components. The remainder after the prefix must split into
// exactly three numeric parts.
func DecodeWorkoutKey(key string) (weekIndex, dayIndex, workoutIndex int, err error) {
	rest, found := strings.CutPrefix(key, workoutKeyPrefix)
	if !found {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidWorkoutKey, key)
	}

	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidWorkoutKey, key)
	}

	indices := make([]int, 3)
	for i, part := range parts {
		indices[i], err = strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidWorkoutKey, key)
		}
	}

	return indices[0], indices[1], indices[2], nil
}
