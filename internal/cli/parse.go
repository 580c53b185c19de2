package cli

import (
	"strings"

	"github.com/masonbuild/mason/internal/build"
)

// Parse interprets raw command-line arguments (excluding the program
// name) into a build Mode and accompanying Options. At most one Mode
// can be selected per invocation; with no selector at all the result
// is a debug build. On malformed input the returned error is a
// *UsageError and both other results are zero.
func Parse(args []string) (Mode, *Options, error) {
	toks := newTokenizer(preprocess(args))
	opts := &Options{}
	var resolved *Mode

	for toks.hasMore() {
		tok := toks.pop()
		switch tok.kind {
		case tokenModeSelector:
			candidate, err := resolveSelector(tok.selector, toks)
			if err != nil {
				return Mode{}, nil, err
			}
			resolved, err = reconcile(resolved, candidate)
			if err != nil {
				return Mode{}, nil, err
			}

		case tokenSwitch:
			if err := applySwitch(tok, toks, opts); err != nil {
				return Mode{}, nil, err
			}

		case tokenName:
			if strings.HasPrefix(tok.text, "-") {
				return Mode{}, nil, usageErr(ImplyUsage, "unknown argument: %s", tok.text)
			}
			return Mode{}, nil, usageErr(ImplyUsage, "Unknown argument: %s", tok.text)
		}
	}

	if resolved == nil {
		resolved = &Mode{Kind: ModeBuild, Configuration: build.Debug}
	}
	return *resolved, opts, nil
}

// isBareName reports whether tok is an unrecognized token that does
// not look like a flag. Dash-prefixed unknowns never qualify for
// lookahead consumption; they fall through to the main loop, which
// rejects them.
func isBareName(tok token) bool {
	return tok.kind == tokenName && !strings.HasPrefix(tok.text, "-")
}

// resolveSelector turns a mode-selector token into a candidate Mode,
// consuming at most one qualifying lookahead token.
func resolveSelector(sel modeSelector, toks *tokenizer) (Mode, error) {
	switch sel {
	case selectBuild:
		if next, ok := toks.peek(); ok && isBareName(next) {
			cfg, known := build.ConfigurationFromName(next.text)
			if !known {
				return Mode{}, usageErr(ImplyUsage, "Unknown build configuration: %s", next.text)
			}
			toks.consumePeeked()
			return Mode{Kind: ModeBuild, Configuration: cfg}, nil
		}
		// No qualifier: build mode is still recorded and the
		// configuration defaults to debug.
		return Mode{Kind: ModeBuild, Configuration: build.Debug}, nil

	case selectClean:
		if next, ok := toks.peek(); ok && isBareName(next) {
			switch next.text {
			case "build":
				toks.consumePeeked()
				return Mode{Kind: ModeClean, Clean: CleanBuild}, nil
			case "dist":
				toks.consumePeeked()
				return Mode{Kind: ModeClean, Clean: CleanDist}, nil
			default:
				return Mode{}, usageErr(ImplyUsage, "Unknown clean mode: %s", next.text)
			}
		}
		return Mode{Kind: ModeClean, Clean: CleanBuild}, nil

	case selectUsage:
		return Mode{Kind: ModeUsage}, nil

	default:
		return Mode{Kind: ModeVersion}, nil
	}
}

// reconcile applies the mutual-exclusivity rules between a previously
// resolved Mode and a new candidate. Re-specifying the same kind is a
// no-op, so repeating --help is tolerated and the first payload wins.
func reconcile(prior *Mode, candidate Mode) (*Mode, error) {
	if prior == nil {
		return &candidate, nil
	}
	if prior.Kind == candidate.Kind {
		return prior, nil
	}
	if prior.Kind == ModeUsage || candidate.Kind == ModeUsage {
		other := prior.Kind
		if other == ModeUsage {
			other = candidate.Kind
		}
		return nil, usageErr(PrintUsage, "Both --help and %s specified", other)
	}
	return nil, usageErr(ImplyUsage, "Multiple modes specified: %s, %s", prior.Kind, candidate.Kind)
}

// applySwitch folds one option switch into opts, consuming a value
// token where the switch requires one.
func applySwitch(tok token, toks *tokenizer, opts *Options) error {
	switch tok.sw {
	case switchChdir:
		next, ok := toks.peek()
		if !ok || !isBareName(next) {
			return usageErr(ImplyUsage, "Option `--chdir' requires subsequent directory argument")
		}
		toks.consumePeeked()
		opts.Chdir = next.text

	case switchVerbose:
		opts.Verbosity++

	case switchXcc:
		value, err := toks.rawPop(tok.text)
		if err != nil {
			return err
		}
		opts.Xcc = append(opts.Xcc, value)

	case switchXlinker:
		value, err := toks.rawPop(tok.text)
		if err != nil {
			return err
		}
		opts.Xlinker = append(opts.Xlinker, value)

	case switchGet:
		opts.FetchOnly = true
	}
	return nil
}
