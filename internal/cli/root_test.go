package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vixigi/julia/internal/cli"
	"github.com/vixigi/julia/internal/triplet"
)

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootNormalize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Canonical", []string{"x86_64-linux-gnu"}, "x86_64-linux-gnu"},
		{"DefaultLibc", []string{"x86_64-linux"}, "x86_64-linux-gnu"},
		{"Vendor", []string{"x86_64-pc-linux-musl"}, "x86_64-linux-musl"},
		{"EmptyCompilerVersion", []string{"x86_64-linux-gnu", ""}, "x86_64-linux-gnu-libgfortran5"},
		{"CompilerVersion", []string{"x86_64-linux-gnu", "gcc version 6.3.0"}, "x86_64-linux-gnu-libgfortran3"},
		{"CxxABI", []string{"x86_64-linux-gnu", "7.1.0", "1"}, "x86_64-linux-gnu-libgfortran4-cxx11"},
		{"EmptyCxxABI", []string{"x86_64-linux-gnu", "7.1.0", ""}, "x86_64-linux-gnu-libgfortran4"},
		{"Flags", []string{"--gcc-version", "9.2.0", "--cxx-abi", "0", "x86_64-apple-darwin14"}, "x86_64-apple-darwin14-libgfortran5-cxx03"},
		{"EmptyGccVersionFlag", []string{"--gcc-version=", "i686-w64-mingw32"}, "i686-w64-mingw32-libgfortran5"},
		{"CxxFlagWithoutGccVersion", []string{"--cxx-abi", "1", "x86_64-linux-gnu"}, "x86_64-linux-gnu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) unexpected error: %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("Execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRootErrors(t *testing.T) {
	t.Run("Unrecognized", func(t *testing.T) {
		out, _, err := run(t, "sparc-unknown-solaris")
		if !errors.Is(err, triplet.ErrUnrecognizedTriplet) {
			t.Errorf("expected ErrUnrecognizedTriplet, got %v", err)
		}
		if out != "" {
			t.Errorf("expected no output, got %q", out)
		}
	})

	t.Run("InvalidCxxABIArgument", func(t *testing.T) {
		_, _, err := run(t, "x86_64-linux-gnu", "9.2.0", "2")
		if !errors.Is(err, triplet.ErrInvalidCxxAbiHint) {
			t.Errorf("expected ErrInvalidCxxAbiHint, got %v", err)
		}
	})

	t.Run("InvalidCxxABIFlag", func(t *testing.T) {
		_, _, err := run(t, "--gcc-version", "9.2.0", "--cxx-abi", "2", "x86_64-linux-gnu")
		if err == nil || !strings.Contains(err.Error(), "invalid C++ ABI hint") {
			t.Errorf("expected invalid C++ ABI hint error, got %v", err)
		}
	})

	t.Run("AmbiguousCompilerVersion", func(t *testing.T) {
		_, _, err := run(t, "x86_64-linux-gnu", "clang")
		if !errors.Is(err, triplet.ErrAmbiguousVersionHint) {
			t.Errorf("expected ErrAmbiguousVersionHint, got %v", err)
		}
	})

	t.Run("ConflictingHints", func(t *testing.T) {
		_, _, err := run(t, "--gcc-version", "9.2.0", "x86_64-linux-gnu", "8.1.0")
		if err == nil || !strings.Contains(err.Error(), "both as argument and --gcc-version") {
			t.Errorf("expected conflict error, got %v", err)
		}
	})

	t.Run("NoArguments", func(t *testing.T) {
		if _, _, err := run(t); err == nil {
			t.Error("expected error without a triplet")
		}
	})

	t.Run("TooManyArguments", func(t *testing.T) {
		if _, _, err := run(t, "x86_64-linux-gnu", "9.2.0", "1", "extra"); err == nil {
			t.Error("expected error with four arguments")
		}
	})
}

func TestRootVerbose(t *testing.T) {
	t.Setenv(cli.LogLevelEnv, "")

	out, errOut, err := run(t, "--verbose", "x86_64-linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "x86_64-linux-gnu" {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(errOut, "defaulted libc") {
		t.Errorf("expected debug log on stderr, got %q", errOut)
	}
}

func TestRootLogLevelEnv(t *testing.T) {
	t.Setenv(cli.LogLevelEnv, "trace")

	_, errOut, err := run(t, "x86_64-linux-gnu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "parsed triplet") {
		t.Errorf("expected trace log on stderr, got %q", errOut)
	}
}

func TestRootQuietByDefault(t *testing.T) {
	t.Setenv(cli.LogLevelEnv, "")

	_, errOut, err := run(t, "x86_64-linux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errOut != "" {
		t.Errorf("expected no stderr output, got %q", errOut)
	}
}

func TestAxesCommand(t *testing.T) {
	out, _, err := run(t, "axes", "--format", "tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 22 {
		t.Errorf("expected 22 spellings, got %d", len(lines))
	}
	for _, want := range []string{
		"architecture\tx86_64\t(x86_|amd)64",
		"libc\tblank_libc\t(empty)",
		"cxx_abi\tcxx11\t-cxx11",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("axes output missing %q", want)
		}
	}

	out, _, err = run(t, "axes", "--format", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "Axis") {
		t.Errorf("expected table header, got %q", out)
	}

	// Not a terminal, so auto falls back to tab-separated output.
	out, _, err = run(t, "axes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "architecture\t") {
		t.Errorf("expected tab-separated output, got %q", out)
	}

	if _, _, err := run(t, "axes", "--format", "json"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestHostCommand(t *testing.T) {
	out, _, err := run(t, "host", "--goos", "linux", "--goarch", "arm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "armv7l-linux-gnueabihf" {
		t.Errorf("host = %q, want %q", got, "armv7l-linux-gnueabihf")
	}

	out, _, err = run(t, "host", "--goos", "darwin", "--goarch", "arm64", "--gcc-version", "", "--cxx-abi", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "aarch64-apple-darwin-libgfortran5-cxx11" {
		t.Errorf("host = %q, want %q", got, "aarch64-apple-darwin-libgfortran5-cxx11")
	}

	_, _, err = run(t, "host", "--goos", "plan9", "--goarch", "amd64")
	if !errors.Is(err, triplet.ErrUnsupportedPlatform) {
		t.Errorf("expected ErrUnsupportedPlatform, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "normalize-triplet version ") {
		t.Errorf("unexpected version output %q", out)
	}
}
