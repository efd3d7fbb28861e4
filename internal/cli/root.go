// Package cli provides the command-line interface for normalize-triplet.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/vixigi/julia/internal/triplet"
	"github.com/vixigi/julia/internal/version"
)

// NewRootCmd builds the command tree. The root command normalizes a triplet;
// subcommands inspect the axis tables and the host platform.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		gccVersion string
		cxxABI     = cxxABIValue{}
	)

	rootCmd := &cobra.Command{
		Use:   "normalize-triplet <host triplet> [<gcc version>] [<cxxabi11>]",
		Short: "Normalize a platform triplet",
		Long: `normalize-triplet rewrites a platform triplet such as "x86_64-pc-linux-musl"
or "arm-linux-gnueabihf" into the canonical spelling used to key binary artifacts.

An optional compiler version (e.g. the output of "gcc --version") appends a
libgfortran tag when the triplet has none; an empty string selects libgfortran5.
When the compiler version is given, an optional C++ ABI hint ("0", "1" or "")
appends -cxx03 or -cxx11.

Examples:
  normalize-triplet x86_64-linux
  normalize-triplet x86_64-linux-gnu "gcc (GCC) 7.3.0"
  normalize-triplet x86_64-linux-gnu "$(gcc --version | head -1)" 1
  normalize-triplet --gcc-version 9.2.0 --cxx-abi 0 x86_64-apple-darwin14`,
		Args:         cobra.RangeArgs(1, 3),
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			cmd.SetContext(hclog.WithContext(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := hintOptions(cmd, args, gccVersion, cxxABI)
			if err != nil {
				return err
			}
			opts = append(opts, triplet.WithLogger(hclog.FromContext(cmd.Context())))

			out, err := triplet.Normalize(args[0], opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().StringVar(&gccVersion, "gcc-version", "", "compiler version used to infer the libgfortran version")
	rootCmd.Flags().Var(&cxxABI, "cxx-abi", `C++ ABI hint ("0" for cxx03, "1" for cxx11, "" for none)`)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAxesCmd())
	rootCmd.AddCommand(newHostCmd())

	return rootCmd
}

// hintOptions turns positional hints and hint flags into normalize options.
// A hint counts as given when present, even if empty.
func hintOptions(cmd *cobra.Command, args []string, gccVersion string, cxxABI cxxABIValue) ([]triplet.Option, error) {
	var opts []triplet.Option

	cxxHint := cxxABI.String()
	gccGiven := cmd.Flags().Changed("gcc-version")
	cxxGiven := cmd.Flags().Changed("cxx-abi")

	if len(args) >= 2 {
		if gccGiven {
			return nil, fmt.Errorf("gcc version given both as argument and --gcc-version")
		}
		gccVersion, gccGiven = args[1], true
	}
	if len(args) == 3 {
		if cxxGiven {
			return nil, fmt.Errorf("C++ ABI hint given both as argument and --cxx-abi")
		}
		cxxHint, cxxGiven = args[2], true
	}

	if gccGiven {
		opts = append(opts, triplet.WithCompilerVersion(gccVersion))
	}
	if cxxGiven {
		opts = append(opts, triplet.WithCxxABIHint(cxxHint))
	}
	return opts, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
