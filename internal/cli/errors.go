package cli

import "fmt"

// Presentation tells the caller how to surface a usage error.
type Presentation int

const (
	// PrintUsage: emit the full usage banner before the message.
	PrintUsage Presentation = iota
	// ImplyUsage: emit only a short hint pointing at --help.
	ImplyUsage
)

// UsageError is the single error kind the parser produces: a
// presentable message plus a hint about how to present it. Parsing
// aborts on the first one; there is no partial-result recovery.
type UsageError struct {
	Message      string
	Presentation Presentation
}

func (e *UsageError) Error() string { return e.Message }

func usageErr(p Presentation, format string, args ...interface{}) *UsageError {
	return &UsageError{
		Message:      fmt.Sprintf(format, args...),
		Presentation: p,
	}
}
