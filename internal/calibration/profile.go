package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/agbru/mpcalc/internal/config"
)

const (
	// CurrentProfileVersion is bumped whenever the profile layout or the
	// meaning of a threshold changes.
	CurrentProfileVersion = 1
	// DefaultProfileFileName is the profile file name in the home directory.
	DefaultProfileFileName = ".mpcalc_calibration.json"
	// DefaultMaxProfileAge is how long a cached profile is trusted.
	DefaultMaxProfileAge = 30 * 24 * time.Hour
)

// CalibrationProfile records measured multiplication thresholds together
// with the hardware they were measured on.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`
	NumCPU         int       `json:"num_cpu"`
	GOARCH         string    `json:"goarch"`
	GOOS           string    `json:"goos"`
	GoVersion      string    `json:"go_version"`
	WordSize       int       `json:"word_size"`
	CPUFeatures    []string  `json:"cpu_features,omitempty"`

	// Thresholds in limbs. Zero means not measured; a negative parallel
	// threshold means parallel Karatsuba did not pay off.
	OptimalKaratsubaThreshold       int `json:"optimal_karatsuba_threshold"`
	OptimalToomCookThreshold        int `json:"optimal_toom_cook_threshold"`
	OptimalKaratsubaSquareThreshold int `json:"optimal_karatsuba_square_threshold"`
	OptimalToomCookSquareThreshold  int `json:"optimal_toom_cook_square_threshold"`
	OptimalParallelThreshold        int `json:"optimal_parallel_threshold"`

	CalibrationTime string `json:"calibration_time,omitempty"`
}

// NewProfile returns an empty profile describing the current host.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		CPUFeatures:    config.CPUFeatures(),
	}
}

// GetDefaultProfilePath returns the profile path in the user's home
// directory, or in the working directory when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// SaveProfile writes the profile as indented JSON.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode calibration profile: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write calibration profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid calibration profile %s: %w", path, err)
	}
	return &p, nil
}

// IsValid reports whether the profile was measured on hardware matching
// the current host.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63) &&
		slices.Equal(p.CPUFeatures, config.CPUFeatures())
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// String summarizes the profile on one line.
func (p *CalibrationProfile) String() string {
	features := "none"
	if len(p.CPUFeatures) > 0 {
		features = strings.Join(p.CPUFeatures, ",")
	}
	return fmt.Sprintf("CalibrationProfile{%s/%s, %d CPUs, features=%s, karatsuba=%d, toom=%d, karatsuba-sqr=%d, toom-sqr=%d, parallel=%d, calibrated %s}",
		p.GOOS, p.GOARCH, p.NumCPU, features,
		p.OptimalKaratsubaThreshold, p.OptimalToomCookThreshold,
		p.OptimalKaratsubaSquareThreshold, p.OptimalToomCookSquareThreshold,
		p.OptimalParallelThreshold, p.CalibratedAt.Format(time.RFC3339))
}

// ApplyTo copies the measured thresholds into every threshold of cfg that
// is still unset.
func (p *CalibrationProfile) ApplyTo(cfg config.AppConfig) config.AppConfig {
	fill := func(dst *int, v int) {
		if *dst == 0 && v != 0 {
			*dst = v
		}
	}
	fill(&cfg.KaratsubaThreshold, p.OptimalKaratsubaThreshold)
	fill(&cfg.ToomCookThreshold, p.OptimalToomCookThreshold)
	fill(&cfg.KaratsubaSquareThreshold, p.OptimalKaratsubaSquareThreshold)
	fill(&cfg.ToomCookSquareThreshold, p.OptimalToomCookSquareThreshold)
	fill(&cfg.ParallelThreshold, p.OptimalParallelThreshold)
	return cfg
}

// LoadCachedCalibration applies a valid, recent profile from path (the
// default path when empty) to cfg. The remaining unset thresholds are then
// estimated from the hardware. It reports whether a profile was used.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() || p.IsStale(DefaultMaxProfileAge) {
		return cfg, false
	}
	return config.ApplyAdaptiveThresholds(p.ApplyTo(cfg)), true
}
