package build

// Configuration selects the flavor of build artifacts to produce.
type Configuration int

const (
	Debug Configuration = iota
	Release
)

func (c Configuration) String() string {
	if c == Release {
		return "release"
	}
	return "debug"
}

// ConfigurationFromName maps a canonical lowercase name to a
// Configuration. Matching is exact.
func ConfigurationFromName(name string) (Configuration, bool) {
	switch name {
	case "debug":
		return Debug, true
	case "release":
		return Release, true
	}
	return Debug, false
}
