package common

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// WorkersCount is the parsed --workers value, resolved once by the root
// command's PersistentPreRunE and read by every subcommand that drives
// concurrent work. It lives here rather than in cmd/root.go so subcommand
// packages can read it without importing the root command package and
// creating an import cycle.
var WorkersCount = 1

// ParseWorkers parses the --workers flag value.
// Accepts: "full" -> NumCPU(), "half" -> NumCPU()/2, or an integer string.
func ParseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
