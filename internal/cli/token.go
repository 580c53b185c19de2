package cli

// modeSelector identifies which Mode a selector token requests.
type modeSelector int

const (
	selectBuild modeSelector = iota
	selectClean
	selectUsage
	selectVersion
)

// switchKind identifies an option switch.
type switchKind int

const (
	switchChdir switchKind = iota
	switchVerbose
	switchXcc
	switchXlinker
	switchGet
)

// Closed alias tables. Matching is case-sensitive and exact; long
// forms and short aliases map to the same logical identity.
var modeSelectors = map[string]modeSelector{
	"--configuration": selectBuild,
	"-c":              selectBuild,
	"--clean":         selectClean,
	"-k":              selectClean,
	"--help":          selectUsage,
	"--version":       selectVersion,
}

var switches = map[string]switchKind{
	"--chdir":   switchChdir,
	"-C":        switchChdir,
	"--verbose": switchVerbose,
	"-v":        switchVerbose,
	"-Xcc":      switchXcc,
	"-Xlinker":  switchXlinker,
	"--get":     switchGet,
}

type tokenKind int

const (
	tokenModeSelector tokenKind = iota
	tokenSwitch
	tokenName
)

// token is the classification of one normalized argument. selector is
// meaningful only for tokenModeSelector, sw only for tokenSwitch; text
// always carries the original spelling.
type token struct {
	kind     tokenKind
	selector modeSelector
	sw       switchKind
	text     string
}

// classify matches arg against the alias tables. Anything unmatched
// comes back as a name token; a dash-prefixed name is an error, but
// that is the resolver's call, not the classifier's.
func classify(arg string) token {
	if sel, ok := modeSelectors[arg]; ok {
		return token{kind: tokenModeSelector, selector: sel, text: arg}
	}
	if sw, ok := switches[arg]; ok {
		return token{kind: tokenSwitch, sw: sw, text: arg}
	}
	return token{kind: tokenName, text: arg}
}
