//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD); it's part of the ARMv8-A base.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
	} else {
		setLevel(DispatchScalar)
	}
}
