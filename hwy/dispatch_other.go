//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures report scalar mode.
	setLevel(DispatchScalar)
}
