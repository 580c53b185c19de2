package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/masonbuild/mason/internal/build"
	"github.com/masonbuild/mason/internal/cli"
	"github.com/masonbuild/mason/internal/ui"
)

const version = "0.3.0"

func main() {
	mode, opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		exitUsage(err)
	}

	root := "."
	if opts.Chdir != "" {
		info, err := os.Stat(opts.Chdir)
		if err != nil || !info.IsDir() {
			ui.Fail("No such directory: %s", opts.Chdir)
			os.Exit(2)
		}
		root = opts.Chdir
	}

	switch mode.Kind {
	case cli.ModeUsage:
		printUsage(func(line string) { fmt.Println(line) })

	case cli.ModeVersion:
		fmt.Printf("mason %s\n", version)

	case cli.ModeClean:
		if opts.FetchOnly || len(opts.Xcc) > 0 || len(opts.Xlinker) > 0 {
			ui.Warn("build flags have no effect with --clean")
		}
		if err := build.Clean(root, mode.Clean == cli.CleanDist); err != nil {
			ui.Fail("Clean failed: %v", err)
			os.Exit(2)
		}

	case cli.ModeBuild:
		req := build.Request{
			SourceRoot:    root,
			Configuration: mode.Configuration,
			Verbosity:     opts.Verbosity,
			CompilerFlags: opts.Xcc,
			LinkerFlags:   opts.Xlinker,
			FetchOnly:     opts.FetchOnly,
		}
		if err := build.Run(req); err != nil {
			ui.Fail("%v", err)
			os.Exit(2)
		}
	}
}

// exitUsage surfaces a parse failure according to its presentation
// classification and exits.
func exitUsage(err error) {
	var uerr *cli.UsageError
	if errors.As(err, &uerr) && uerr.Presentation == cli.PrintUsage {
		printUsage(func(line string) { fmt.Fprintln(os.Stderr, line) })
		fmt.Fprintln(os.Stderr, "")
		ui.Fail("%s", uerr.Message)
	} else {
		ui.Fail("%v", err)
		ui.Info("Run %s for usage information", ui.Bold("mason --help"))
	}
	os.Exit(1)
}

// printUsage renders the usage banner one line at a time through the
// supplied sink.
func printUsage(print func(string)) {
	for _, line := range strings.Split(usageText, "\n") {
		print(line)
	}
}

const usageText = `mason - a small build tool for C projects

USAGE:
    mason [OPTIONS]

MODES:
    --configuration <debug|release>   Build with the given configuration (-c)
    --clean[=<build|dist>]            Remove build products; dist also
                                      removes fetched dependencies (-k)
    --help                            Show this help message
    --version                         Show version information

OPTIONS:
    --chdir <dir>                     Operate on <dir> instead of the
                                      current directory (-C)
    --verbose                         Increase verbosity; repeatable (-v)
    -Xcc <flag>                       Pass <flag> through to the C compiler
    -Xlinker <flag>                   Pass <flag> through to the linker
    --get                             Fetch dependencies, then stop

EXAMPLES:
    # Debug build of the current directory
    mason

    # Release build with an extra include path
    mason -c release -Xcc -I/usr/local/include

    # Remove everything, fetched dependencies included
    mason --clean=dist`
