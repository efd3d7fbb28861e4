package triplet

import "fmt"

// HostTriplet converts Go's GOOS/GOARCH to a canonical triplet.
// Linux is assumed to be glibc and 32-bit ARM to be hard-float ARMv7.
func HostTriplet(goos, goarch string, opts ...Option) (string, error) {
	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "386":
		arch = "i686"
	case "arm64":
		arch = "aarch64"
	case "arm":
		arch = "armv7l"
	case "ppc64le":
		arch = "powerpc64le"
	default:
		return "", newError(ErrUnsupportedPlatform, goos+"/"+goarch)
	}

	var raw string
	switch goos {
	case "linux":
		raw = fmt.Sprintf("%s-linux-gnu", arch)
		if goarch == "arm" {
			raw += "eabihf"
		}
	case "darwin":
		raw = fmt.Sprintf("%s-apple-darwin", arch)
	case "windows":
		raw = fmt.Sprintf("%s-w64-mingw32", arch)
	case "freebsd":
		raw = fmt.Sprintf("%s-unknown-freebsd", arch)
	default:
		return "", newError(ErrUnsupportedPlatform, goos+"/"+goarch)
	}

	return Normalize(raw, opts...)
}
