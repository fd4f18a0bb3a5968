package utils

import "strconv"

// ParseRounds reads the optional positional round count from args (without the program name).
// A missing, unparsable or non-positive value yields fallback.
func ParseRounds(args []string, fallback int) int {
	if len(args) == 0 {
		return fallback
	}
	rounds, err := strconv.Atoi(args[0])
	if err != nil || rounds <= 0 {
		return fallback
	}
	return rounds
}
