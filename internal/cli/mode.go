package cli

import "github.com/masonbuild/mason/internal/build"

// ModeKind discriminates the resolved Mode variants.
type ModeKind int

const (
	ModeBuild ModeKind = iota
	ModeClean
	ModeUsage
	ModeVersion
)

// String returns the canonical flag spelling that selects the mode.
// It is used verbatim in mode-conflict error messages.
func (k ModeKind) String() string {
	switch k {
	case ModeBuild:
		return "--configuration"
	case ModeClean:
		return "--clean"
	case ModeUsage:
		return "--help"
	case ModeVersion:
		return "--version"
	}
	return "unknown"
}

// Mode is the single resolved outcome of a parse. Configuration is
// meaningful only when Kind is ModeBuild, Clean only when Kind is
// ModeClean.
type Mode struct {
	Kind          ModeKind
	Configuration build.Configuration
	Clean         CleanMode
}

// CleanMode selects how much state a clean removes.
type CleanMode int

const (
	// CleanBuild removes build products only.
	CleanBuild CleanMode = iota
	// CleanDist additionally removes fetched dependency checkouts.
	CleanDist
)

func (m CleanMode) String() string {
	if m == CleanDist {
		return "dist"
	}
	return "build"
}

// Options accumulates the auxiliary settings that accompany a Mode.
// Fields only grow or get set during a parse, never reset.
type Options struct {
	// Chdir is the working-directory override; empty means unset.
	Chdir string

	// Verbosity counts occurrences of --verbose / -v.
	Verbosity int

	// Xcc and Xlinker hold pass-through flags exactly as received,
	// in order, with no normalization applied.
	Xcc     []string
	Xlinker []string

	// FetchOnly stops a build after the dependency-fetch step.
	FetchOnly bool
}
