package cli

import "strings"

// preprocess rewrites the raw argument list into normalized tokens.
// Bundled short flags are split one flag per character (-vv -> -v -v),
// key=value forms are split at the first '=' (--clean=dist -> --clean
// dist), and the argument following a pass-through switch is emitted
// untouched so flag-like values survive verbatim. Tokens are never
// reordered or merged.
func preprocess(args []string) []string {
	out := make([]string, 0, len(args))
	protectNext := false
	for _, arg := range args {
		switch {
		case protectNext:
			out = append(out, arg)
			protectNext = false
		case arg == "-Xcc" || arg == "-Xlinker":
			out = append(out, arg)
			protectNext = true
		case strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2:
			for _, c := range arg[1:] {
				out = append(out, "-"+string(c))
			}
		case strings.Contains(arg, "="):
			for _, part := range strings.SplitN(arg, "=", 2) {
				if part != "" {
					out = append(out, part)
				}
			}
		default:
			out = append(out, arg)
		}
	}
	return out
}
