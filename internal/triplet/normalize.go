package triplet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Option configures a Normalize call.
type Option func(*options)

type options struct {
	compilerVersion *string
	cxxABI          *string
	logger          hclog.Logger
}

// WithCompilerVersion supplies a compiler version string (e.g. the output of
// "gcc --version") used to infer the libgfortran version when the triplet
// does not name one. An empty string selects the newest libgfortran.
func WithCompilerVersion(version string) Option {
	return func(o *options) {
		o.compilerVersion = &version
	}
}

// WithCxxABIHint supplies the C++ ABI hint: "0" for cxx03, "1" for cxx11 and
// "" for none. It is only consulted together with WithCompilerVersion and
// when the triplet names no C++ ABI.
func WithCxxABIHint(hint string) Option {
	return func(o *options) {
		o.cxxABI = &hint
	}
}

// WithLogger sets the logger used to trace matching and inference.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Normalize parses a triplet, fills defaults, applies the hints and returns
// the canonical spelling.
func Normalize(input string, opts ...Option) (string, error) {
	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	o.logger.Trace("parsed triplet", "input", input, "arch", t.Arch, "platform", t.Platform,
		"libc", t.Libc, "call_abi", t.CallABI, "libgfortran", t.Libgfortran, "cxx_abi", t.CxxABI)

	// Linux triplets without an explicit libc are glibc.
	if t.Platform == PlatformLinux && t.Libc == LibcUnspecified {
		t.Libc = LibcGNU
		o.logger.Debug("defaulted libc", "libc", t.Libc)
	}

	if t.Libgfortran == LibgfortranUnspecified && o.compilerVersion != nil {
		v, err := libgfortranFromCompiler(*o.compilerVersion)
		if err != nil {
			return "", err
		}
		t.Libgfortran = v
		o.logger.Debug("inferred libgfortran", "compiler_version", *o.compilerVersion, "libgfortran", v)
	}

	if o.cxxABI != nil && o.compilerVersion != nil && t.CxxABI == CxxABIUnspecified {
		abi, err := cxxABIFromHint(*o.cxxABI)
		if err != nil {
			return "", err
		}
		t.CxxABI = abi
		o.logger.Debug("applied C++ ABI hint", "hint", *o.cxxABI, "cxx_abi", abi)
	}

	return t.String(), nil
}

// Parse decomposes a triplet into its axis tags without applying defaults or
// hints. Unlike Normalize, a bare Linux triplet keeps LibcUnspecified.
func Parse(input string) (Triplet, error) {
	loc := tripletRE.FindStringSubmatchIndex(input)
	if loc == nil {
		return Triplet{}, newError(ErrUnrecognizedTriplet, input)
	}

	var tags [numAxes]string
	var osVersion string
	for axis, spellings := range spellingTables {
		for i, sp := range spellings {
			g := spellingGroups[axis][i]
			if loc[2*g] < 0 {
				continue
			}
			tags[axis] = sp.Tag
			if v := versionGroups[axis][i]; v >= 0 && loc[2*v] >= 0 {
				osVersion = input[loc[2*v]:loc[2*v+1]]
			}
			break
		}
	}

	return Triplet{
		Arch:        Arch(tags[AxisArchitecture]),
		Platform:    Platform(tags[AxisPlatform]),
		OSVersion:   osVersion,
		Libc:        Libc(tags[AxisLibc]),
		CallABI:     CallABI(tags[AxisCallABI]),
		Libgfortran: Libgfortran(tags[AxisLibgfortran]),
		CxxABI:      CxxABI(tags[AxisCxxABI]),
	}, nil
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// libgfortranFromCompiler takes the major version from the first run of
// digits in the last word that has one.
func libgfortranFromCompiler(version string) (Libgfortran, error) {
	if version == "" {
		return Libgfortran5, nil
	}

	words := strings.Fields(version)
	for i := len(words) - 1; i >= 0; i-- {
		digits := digitRun.FindString(words[i])
		if digits == "" {
			continue
		}
		major, err := strconv.Atoi(digits)
		if err != nil {
			// Out of int range, so certainly newer than 7.
			return Libgfortran5, nil
		}
		switch {
		case major <= 6:
			return Libgfortran3, nil
		case major <= 7:
			return Libgfortran4, nil
		default:
			return Libgfortran5, nil
		}
	}
	return "", newError(ErrAmbiguousVersionHint, version)
}

func cxxABIFromHint(hint string) (CxxABI, error) {
	switch hint {
	case "0":
		return CxxABI03, nil
	case "1":
		return CxxABI11, nil
	case "":
		return CxxABIUnspecified, nil
	default:
		return "", newError(ErrInvalidCxxAbiHint, hint)
	}
}
