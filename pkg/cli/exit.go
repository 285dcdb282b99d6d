package cli

import (
	"errors"
	"fmt"

	"github.com/mchmarny/spamdetector/pkg/detector"
	"github.com/mchmarny/spamdetector/pkg/table"
	"github.com/mchmarny/spamdetector/pkg/text"
	"github.com/mchmarny/spamdetector/pkg/threshold"
	urfave "github.com/urfave/cli/v2"
)

// Process exit codes, one per failure kind.
const (
	ExitOK                = 0
	ExitUsage             = 1
	ExitThresholdInvalid  = 2
	ExitDatabaseNotFound  = 3
	ExitDatabaseMalformed = 4
	ExitTextNotFound      = 5
)

const (
	usageText    = "Usage: " + appName + " <database path> <text path> <threshold>"
	invalidInput = "Invalid input: "
)

func usageError(err error) urfave.ExitCoder {
	return urfave.Exit(err.Error(), ExitUsage)
}

// classifyError maps a pipeline failure to its diagnostic and exit code.
func classifyError(in detector.Input, err error) urfave.ExitCoder {
	var se *table.SyntaxError
	switch {
	case errors.Is(err, threshold.ErrInvalid):
		return urfave.Exit(fmt.Sprintf("%sthreshold must be a positive integer, got %q", invalidInput, in.Threshold),
			ExitThresholdInvalid)
	case errors.Is(err, table.ErrNotFound):
		return urfave.Exit(fmt.Sprintf("%scannot open database file %q", invalidInput, in.DatabasePath),
			ExitDatabaseNotFound)
	case errors.As(err, &se):
		return urfave.Exit(fmt.Sprintf("%smalformed database %q: line %d: %s", invalidInput, in.DatabasePath, se.Line, se.Reason),
			ExitDatabaseMalformed)
	case errors.Is(err, table.ErrMalformed):
		return urfave.Exit(fmt.Sprintf("%smalformed database %q", invalidInput, in.DatabasePath),
			ExitDatabaseMalformed)
	case errors.Is(err, text.ErrNotFound):
		return urfave.Exit(fmt.Sprintf("%scannot open text file %q", invalidInput, in.TextPath),
			ExitTextNotFound)
	default:
		return urfave.Exit(err.Error(), ExitUsage)
	}
}

// exitFor returns the exit code and the single stderr line for err.
func exitFor(err error) (int, string) {
	var ec urfave.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode(), ec.Error()
	}
	return ExitUsage, err.Error()
}
