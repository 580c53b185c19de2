package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/masonbuild/mason/internal/ui"
)

const (
	buildDirName = ".build"
	depsDirName  = "deps"
	depsFileName = "DEPS"
)

// Request describes a single engine invocation.
type Request struct {
	// SourceRoot is the directory to build; "." unless a
	// working-directory override was given.
	SourceRoot    string
	Configuration Configuration

	// Verbosity >= 1 echoes each external command before running it.
	Verbosity int

	// CompilerFlags and LinkerFlags are pass-through values, applied
	// to the toolchain invocation exactly as received.
	CompilerFlags []string
	LinkerFlags   []string

	// FetchOnly stops after the dependency-fetch step.
	FetchOnly bool
}

// Run performs the build described by req: fetch dependencies, then
// compile unless the request is fetch-only.
func Run(req Request) error {
	if err := Fetch(req.SourceRoot, req.Verbosity); err != nil {
		return err
	}
	if req.FetchOnly {
		return nil
	}
	return compile(req)
}

// Fetch clones every dependency listed in the DEPS file at root into
// deps/. A missing DEPS file means the project has no dependencies.
// Checkouts that already exist are left alone.
func Fetch(root string, verbosity int) error {
	urls, err := readDeps(filepath.Join(root, depsFileName))
	if err != nil {
		return err
	}
	for _, url := range urls {
		dest := filepath.Join(root, depsDirName, checkoutName(url))
		if _, err := os.Stat(dest); err == nil {
			if verbosity >= 1 {
				ui.DimMsg("already fetched: %s", url)
			}
			continue
		}
		ui.Info("Fetching %s", url)
		cmd := exec.Command("git", "clone", "--depth", "1", url, dest)
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
		if verbosity >= 1 {
			echoCommand(cmd.Args)
		}
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("fetching %s: %w", url, err)
		}
	}
	return nil
}

// readDeps parses a DEPS file: one clone URL per line, blank lines
// and #-comments ignored.
func readDeps(depsPath string) ([]string, error) {
	data, err := os.ReadFile(depsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

// checkoutName derives the deps/ directory name from a clone URL:
// the last path element with any .git suffix stripped.
func checkoutName(url string) string {
	name := strings.TrimSuffix(url, ".git")
	name = strings.TrimSuffix(name, "/")
	if i := strings.LastIndex(name, ":"); i >= 0 && !strings.Contains(name[i:], "/") {
		// scp-style git URL (host:path with no slash after the colon)
		name = name[i+1:]
	}
	return path.Base(name)
}

// echoCommand prints a command line before it runs. The joined
// arguments must never be treated as a format string: pass-through
// flags may contain printf verbs and have to appear exactly as
// received.
func echoCommand(args []string) {
	ui.DimMsg("%s", strings.Join(args, " "))
}

func compile(req Request) error {
	sources, err := findSources(req.SourceRoot)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no C sources found under %s", req.SourceRoot)
	}

	outDir := filepath.Join(req.SourceRoot, buildDirName, req.Configuration.String())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	args := []string{}
	if req.Configuration == Release {
		args = append(args, "-O2")
	} else {
		args = append(args, "-g")
	}
	args = append(args, req.CompilerFlags...)
	args = append(args, sources...)
	args = append(args, req.LinkerFlags...)
	args = append(args, "-o", filepath.Join(outDir, productName(req.SourceRoot)))

	cmd := exec.Command("cc", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if req.Verbosity >= 1 {
		echoCommand(cmd.Args)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cc failed: %w", err)
	}
	ui.Success("Built %s (%s)", productName(req.SourceRoot), req.Configuration)
	return nil
}

// findSources collects every .c file under root, skipping build
// output, fetched dependencies, and VCS metadata.
func findSources(root string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case buildDirName, depsDirName, ".git":
				if p != root {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".c") {
			sources = append(sources, p)
		}
		return nil
	})
	return sources, err
}

// productName names the output binary after the source directory.
func productName(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "a.out"
	}
	return filepath.Base(abs)
}
