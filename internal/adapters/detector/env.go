// Package detector picks the color profile for user-facing output.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/wandler/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents how user-facing output is rendered.
type OutputMode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto OutputMode = iota
	// ModeTerminal renders with the terminal's full color capabilities.
	ModeTerminal
	// ModeCI renders basic ANSI colors for CI log viewers.
	ModeCI
	// ModePlain renders no escape sequences.
	ModePlain
)

// DetectEnvironment returns the output mode for the current process.
// CI=true or CI=1 selects ModeCI, a non-terminal stdout selects ModePlain.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if ci == "true" || ci == "1" {
		return ModeCI
	}
	if !isTTY {
		return ModePlain
	}
	return ModeTerminal
}

// ResolveMode applies a user override to the detected mode.
// userFlag is one of "auto", "always", "never" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "always":
		if autoDetected == ModePlain {
			return ModeCI
		}
		return autoDetected
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile returns the profile selector for mode.
func Profile(mode OutputMode) func() termenv.Profile {
	switch mode {
	case ModeCI:
		return output.ColorProfileANSI
	case ModePlain:
		return output.ColorProfileASCII
	default:
		return output.ColorProfile
	}
}
