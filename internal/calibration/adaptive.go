// This file implements the candidate threshold lists swept by calibration.

package calibration

import "runtime"

// GenerateKaratsubaThresholds returns the Karatsuba crossovers to try, in
// limbs. The same list serves the squaring crossover.
func GenerateKaratsubaThresholds() []int {
	return []int{16, 24, 32, 48, 64, 80, 96, 128}
}

// GenerateToomCookThresholds returns the Toom-Cook crossovers to try, in
// limbs.
func GenerateToomCookThresholds() []int {
	return []int{128, 160, 192, 240, 288, 384}
}

// GenerateParallelThresholds generates the parallel Karatsuba thresholds to
// test based on the number of available CPU cores. Zero stands for the
// sequential run every other candidate is compared with.
//
// The rationale:
// - Single-core: Only test sequential (0) as parallelism has no benefit
// - 2-4 cores: Test higher thresholds as goroutine overhead is relatively high
// - 8+ cores: Include lower thresholds as more parallelism can be beneficial
func GenerateParallelThresholds() []int {
	numCPU := runtime.NumCPU()

	thresholds := []int{0}

	switch {
	case numCPU == 1:
		return thresholds
	case numCPU <= 4:
		thresholds = append(thresholds, 1024, 2048, 4096, 8192)
	case numCPU <= 8:
		thresholds = append(thresholds, 512, 1024, 2048, 4096, 8192)
	default:
		thresholds = append(thresholds, 256, 512, 1024, 2048, 4096, 8192)
	}

	return thresholds
}
