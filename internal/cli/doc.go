// Package cli interprets the argument vector of a mason invocation.
//
// Parsing runs as a three-stage pipeline: a preprocessor rewrites the
// raw arguments into a normalized token list (bundled short flags and
// key=value forms are split, pass-through values are protected), a
// cursor-based tokenizer classifies tokens on demand, and a resolver
// drives the tokenizer to completion, accumulating a single Mode plus
// an Options value.
//
// The package decides what an invocation means; it never executes a
// build, renders usage text, or touches process state. Callers get
// back either a (Mode, Options) pair or a *UsageError whose
// Presentation field says how the failure should be surfaced.
//
// Example usage:
//
//	mode, opts, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    var uerr *cli.UsageError
//	    if errors.As(err, &uerr) && uerr.Presentation == cli.PrintUsage {
//	        printUsage()
//	    }
//	    os.Exit(1)
//	}
package cli
