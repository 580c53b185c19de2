package cli

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/masonbuild/mason/internal/build"
)

func TestParseModes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantKind   ModeKind
		wantConfig build.Configuration
		wantClean  CleanMode
	}{
		{
			name:       "no arguments defaults to debug build",
			args:       []string{},
			wantKind:   ModeBuild,
			wantConfig: build.Debug,
		},
		{
			name:       "short configuration selector with release",
			args:       []string{"-c", "release"},
			wantKind:   ModeBuild,
			wantConfig: build.Release,
		},
		{
			name:       "long configuration selector with debug",
			args:       []string{"--configuration", "debug"},
			wantKind:   ModeBuild,
			wantConfig: build.Debug,
		},
		{
			name:       "configuration selector without qualifier defaults to debug",
			args:       []string{"-c"},
			wantKind:   ModeBuild,
			wantConfig: build.Debug,
		},
		{
			name:       "configuration selector followed by a switch",
			args:       []string{"-c", "--get"},
			wantKind:   ModeBuild,
			wantConfig: build.Debug,
		},
		{
			name:      "clean without qualifier defaults to build",
			args:      []string{"--clean"},
			wantKind:  ModeClean,
			wantClean: CleanBuild,
		},
		{
			name:      "clean with equals qualifier",
			args:      []string{"--clean=dist"},
			wantKind:  ModeClean,
			wantClean: CleanDist,
		},
		{
			name:      "clean with separate qualifier token",
			args:      []string{"--clean", "dist"},
			wantKind:  ModeClean,
			wantClean: CleanDist,
		},
		{
			name:      "short clean alias",
			args:      []string{"-k", "build"},
			wantKind:  ModeClean,
			wantClean: CleanBuild,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			wantKind: ModeUsage,
		},
		{
			name:     "repeated help is tolerated",
			args:     []string{"--help", "--help"},
			wantKind: ModeUsage,
		},
		{
			name:     "version",
			args:     []string{"--version"},
			wantKind: ModeVersion,
		},
		{
			name:       "re-specifying build keeps the first configuration",
			args:       []string{"-c", "debug", "-c", "release"},
			wantKind:   ModeBuild,
			wantConfig: build.Debug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, _, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.args, err)
			}
			if mode.Kind != tt.wantKind {
				t.Fatalf("Parse(%v) mode = %v, want %v", tt.args, mode.Kind, tt.wantKind)
			}
			if tt.wantKind == ModeBuild && mode.Configuration != tt.wantConfig {
				t.Errorf("Parse(%v) configuration = %v, want %v", tt.args, mode.Configuration, tt.wantConfig)
			}
			if tt.wantKind == ModeClean && mode.Clean != tt.wantClean {
				t.Errorf("Parse(%v) clean mode = %v, want %v", tt.args, mode.Clean, tt.wantClean)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "defaults",
			args: []string{},
			want: Options{},
		},
		{
			name: "bundled verbose flags count twice",
			args: []string{"-vv"},
			want: Options{Verbosity: 2},
		},
		{
			name: "verbose repeats accumulate",
			args: []string{"--verbose", "-v", "-v"},
			want: Options{Verbosity: 3},
		},
		{
			name: "chdir long form",
			args: []string{"--chdir", "pkg/sub"},
			want: Options{Chdir: "pkg/sub"},
		},
		{
			name: "chdir short alias",
			args: []string{"-C", "elsewhere"},
			want: Options{Chdir: "elsewhere"},
		},
		{
			name: "compiler pass-through keeps dash value verbatim",
			args: []string{"-Xcc", "-I/usr/include"},
			want: Options{Xcc: []string{"-I/usr/include"}},
		},
		{
			name: "linker pass-through preserves order",
			args: []string{"-Xlinker", "-L/opt/lib", "-Xlinker", "-lm"},
			want: Options{Xlinker: []string{"-L/opt/lib", "-lm"}},
		},
		{
			name: "pass-through value that spells a flag is not interpreted",
			args: []string{"-Xcc", "--clean"},
			want: Options{Xcc: []string{"--clean"}},
		},
		{
			name: "fetch only",
			args: []string{"--get"},
			want: Options{FetchOnly: true},
		},
		{
			name: "options combine with a mode",
			args: []string{"-c", "release", "-vv", "--get", "-Xcc", "-DNDEBUG"},
			want: Options{Verbosity: 2, FetchOnly: true, Xcc: []string{"-DNDEBUG"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opts, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.args, err)
			}
			if !reflect.DeepEqual(*opts, tt.want) {
				t.Errorf("Parse(%v) options = %+v, want %+v", tt.args, *opts, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		wantMsg          string
		wantPresentation Presentation
	}{
		{
			name:             "help then another mode",
			args:             []string{"--help", "--clean"},
			wantMsg:          "Both --help and --clean specified",
			wantPresentation: PrintUsage,
		},
		{
			name:             "another mode then help",
			args:             []string{"--clean", "--help"},
			wantMsg:          "Both --help and --clean specified",
			wantPresentation: PrintUsage,
		},
		{
			name:             "help conflicts with version",
			args:             []string{"--help", "--version"},
			wantMsg:          "Both --help and --version specified",
			wantPresentation: PrintUsage,
		},
		{
			name:             "two distinct non-help modes",
			args:             []string{"-c", "debug", "--clean"},
			wantMsg:          "Multiple modes specified: --configuration, --clean",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "version then clean",
			args:             []string{"--version", "--clean"},
			wantMsg:          "Multiple modes specified: --version, --clean",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "unknown build configuration",
			args:             []string{"-c", "profile"},
			wantMsg:          "Unknown build configuration: profile",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "unknown clean mode",
			args:             []string{"--clean", "everything"},
			wantMsg:          "Unknown clean mode: everything",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "chdir without directory",
			args:             []string{"--chdir"},
			wantMsg:          "requires subsequent directory argument",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "chdir followed by a flag",
			args:             []string{"--chdir", "-v"},
			wantMsg:          "requires subsequent directory argument",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "trailing compiler pass-through",
			args:             []string{"-Xcc"},
			wantMsg:          "expected argument",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "trailing linker pass-through",
			args:             []string{"-Xlinker"},
			wantMsg:          "expected argument",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "unknown long flag",
			args:             []string{"--badflag"},
			wantMsg:          "unknown argument: --badflag",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "unknown short flag",
			args:             []string{"-x"},
			wantMsg:          "unknown argument: -x",
			wantPresentation: ImplyUsage,
		},
		{
			name:             "stray bare word",
			args:             []string{"stuff"},
			wantMsg:          "Unknown argument: stuff",
			wantPresentation: ImplyUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args)
			if err == nil {
				t.Fatalf("Parse(%v) succeeded, want error", tt.args)
			}
			var uerr *UsageError
			if !errors.As(err, &uerr) {
				t.Fatalf("Parse(%v) error type = %T, want *UsageError", tt.args, err)
			}
			if !strings.Contains(uerr.Message, tt.wantMsg) {
				t.Errorf("Parse(%v) message = %q, want it to contain %q", tt.args, uerr.Message, tt.wantMsg)
			}
			if uerr.Presentation != tt.wantPresentation {
				t.Errorf("Parse(%v) presentation = %v, want %v", tt.args, uerr.Presentation, tt.wantPresentation)
			}
		})
	}
}
