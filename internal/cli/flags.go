package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/vixigi/julia/internal/triplet"
)

// cxxABIValue is a flag value restricted to the C++ ABI hints "0", "1" and "".
type cxxABIValue struct {
	hint string
}

var _ pflag.Value = (*cxxABIValue)(nil)

func (v *cxxABIValue) String() string {
	return v.hint
}

func (v *cxxABIValue) Set(s string) error {
	switch s {
	case "0", "1", "":
		v.hint = s
		return nil
	default:
		return fmt.Errorf("%w %q (expected \"0\", \"1\" or \"\")", triplet.ErrInvalidCxxAbiHint, s)
	}
}

func (v *cxxABIValue) Type() string {
	return "0|1"
}
