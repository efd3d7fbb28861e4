package cli

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/vixigi/julia/internal/triplet"
)

func newHostCmd() *cobra.Command {
	var (
		goos       string
		goarch     string
		gccVersion string
		cxxABI     = cxxABIValue{}
	)

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Print the canonical triplet of a Go platform",
		Long: `Print the canonical triplet for a GOOS/GOARCH pair, by default the platform
this binary was built for. Linux is assumed to use glibc.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []triplet.Option{triplet.WithLogger(hclog.FromContext(cmd.Context()))}
			if cmd.Flags().Changed("gcc-version") {
				opts = append(opts, triplet.WithCompilerVersion(gccVersion))
			}
			if cmd.Flags().Changed("cxx-abi") {
				opts = append(opts, triplet.WithCxxABIHint(cxxABI.String()))
			}

			out, err := triplet.HostTriplet(goos, goarch, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&goos, "goos", runtime.GOOS, "target operating system")
	cmd.Flags().StringVar(&goarch, "goarch", runtime.GOARCH, "target architecture")
	cmd.Flags().StringVar(&gccVersion, "gcc-version", "", "compiler version used to infer the libgfortran version")
	cmd.Flags().Var(&cxxABI, "cxx-abi", `C++ ABI hint ("0" for cxx03, "1" for cxx11, "" for none)`)
	return cmd
}
