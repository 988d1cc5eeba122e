package config

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/agbru/mpcalc/internal/mpint"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flags (-karatsuba, -toom, -parallel, ...)
//   2. Environment variables (MPCALC_KARATSUBA_THRESHOLD, etc.)
//   3. Cached calibration profile (~/.mpcalc_calibration.json)
//   4. Adaptive hardware estimation (this file)
//   5. Static defaults in mpint/mul.go

// ApplyAdaptiveThresholds fills every threshold still at zero with an
// estimate based on the CPU count and instruction set. Thresholds set by a
// flag, the environment or a profile are preserved.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateOptimalKaratsubaThreshold()
	}
	if cfg.ToomCookThreshold == 0 {
		cfg.ToomCookThreshold = EstimateOptimalToomCookThreshold()
	}
	if cfg.KaratsubaSquareThreshold == 0 {
		cfg.KaratsubaSquareThreshold = mpint.DefaultKaratsubaSquareThreshold
	}
	if cfg.ToomCookSquareThreshold == 0 {
		cfg.ToomCookSquareThreshold = mpint.DefaultToomCookSquareThreshold
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold provides a heuristic estimate of the
// parallel Karatsuba threshold, in limbs, without running benchmarks.
// It returns -1 on a single CPU, where forking only adds overhead.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return -1 // No parallelism
	case numCPU <= 2:
		return 4096 // Goroutine overhead dominates until operands are large
	case numCPU <= 4:
		return 2048
	case numCPU <= 8:
		return 1024
	case numCPU <= 16:
		return 768
	default:
		return 512 // High core count - aggressive parallelism
	}
}

// EstimateOptimalKaratsubaThreshold estimates the Karatsuba crossover.
// Wide multiply instructions make the schoolbook inner loop cheaper, which
// moves the crossover up.
func EstimateOptimalKaratsubaThreshold() int {
	if cpu.X86.HasBMI2 && cpu.X86.HasADX {
		return mpint.DefaultKaratsubaThreshold + 16
	}
	return mpint.DefaultKaratsubaThreshold
}

// EstimateOptimalToomCookThreshold estimates the Toom-Cook crossover.
func EstimateOptimalToomCookThreshold() int {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return mpint.DefaultToomCookThreshold + 32
	}
	return mpint.DefaultToomCookThreshold
}

// CPUFeatures lists the arithmetic-relevant instruction set extensions of
// the host.
func CPUFeatures() []string {
	var features []string
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"adx", cpu.X86.HasADX},
		{"bmi2", cpu.X86.HasBMI2},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
	} {
		if f.present {
			features = append(features, f.name)
		}
	}
	return features
}
