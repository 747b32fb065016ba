// Package config describes a batch of independent curve segments, read from
// YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/curve3d"
	"github.com/gogpu/curve3d/internal/drive"
)

// DefaultSamples is used when neither the file nor a segment sets a count.
const DefaultSamples = 100

// MaxSamples bounds sample counts. Arc tables hold samples+1 float32 values.
const MaxSamples = 1 << 20

var (
	// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrNoSegments is returned when a config lists no segments.
	ErrNoSegments = errors.New("config: no segments")

	// ErrBadPointCount is returned for a segment without exactly four
	// three-component points.
	ErrBadPointCount = errors.New("config: segment needs four 3D points")

	// ErrBadSamples is returned for sample counts outside [0, MaxSamples].
	ErrBadSamples = errors.New("config: sample count out of range")

	// ErrBadVector is returned for translate or axis values that are not
	// three components long.
	ErrBadVector = errors.New("config: vector needs three components")

	// ErrBadWheel is returned for a wheel without a positive diameter.
	ErrBadWheel = errors.New("config: wheel diameter must be positive")
)

// Format identifies a config file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config is a batch of segments plus the settings shared by all of them.
type Config struct {
	Samples  int             `yaml:"samples" toml:"samples"`
	LogLevel string          `yaml:"logLevel" toml:"logLevel"`
	Segments []SegmentConfig `yaml:"segments" toml:"segments"`
	Wheel    *WheelConfig    `yaml:"wheel,omitempty" toml:"wheel,omitempty"`
}

// SegmentConfig describes one segment. Translate is applied before Rotate.
type SegmentConfig struct {
	Name      string          `yaml:"name" toml:"name"`
	Points    [][]float32     `yaml:"points" toml:"points"`
	Samples   int             `yaml:"samples,omitempty" toml:"samples,omitempty"`
	Translate []float32       `yaml:"translate,omitempty" toml:"translate,omitempty"`
	Rotate    *RotationConfig `yaml:"rotate,omitempty" toml:"rotate,omitempty"`
}

// RotationConfig is a rotation about an axis through the origin.
type RotationConfig struct {
	Axis    []float32 `yaml:"axis" toml:"axis"`
	Degrees float32   `yaml:"degrees" toml:"degrees"`
}

// WheelConfig describes the wheel driven along the first segment.
// A zero RevolveModifier means 1.
type WheelConfig struct {
	Diameter        float32 `yaml:"diameter" toml:"diameter"`
	RevolveModifier float32 `yaml:"revolveModifier" toml:"revolveModifier"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads, decodes and validates the config file at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode decodes and validates a config. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Config, error) {
	var c Config
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in demo: the quarter loop used throughout the
// tests, plus a wheel of diameter 0.5.
func Default() *Config {
	return &Config{
		Samples:  DefaultSamples,
		LogLevel: "info",
		Segments: []SegmentConfig{{
			Name:   "quarter-loop",
			Points: [][]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		}},
		Wheel: &WheelConfig{Diameter: 0.5, RevolveModifier: 1},
	}
}

// Validate checks the config for structural errors.
func (c *Config) Validate() error {
	if err := CheckSamples(c.Samples); err != nil {
		return err
	}
	if c.Wheel != nil && !(c.Wheel.Diameter > 0) {
		return fmt.Errorf("%w: %v", ErrBadWheel, c.Wheel.Diameter)
	}
	if len(c.Segments) == 0 {
		return ErrNoSegments
	}
	for i, s := range c.Segments {
		if err := s.validate(); err != nil {
			return fmt.Errorf("segment %d (%s): %w", i, s.Name, err)
		}
	}
	return nil
}

func (s SegmentConfig) validate() error {
	if len(s.Points) != curve3d.NumPoints {
		return fmt.Errorf("%w: got %d points", ErrBadPointCount, len(s.Points))
	}
	for i, p := range s.Points {
		if len(p) != 3 {
			return fmt.Errorf("%w: point %d has %d components", ErrBadPointCount, i, len(p))
		}
	}
	if err := CheckSamples(s.Samples); err != nil {
		return err
	}
	if s.Translate != nil && len(s.Translate) != 3 {
		return fmt.Errorf("%w: translate", ErrBadVector)
	}
	if s.Rotate != nil && len(s.Rotate.Axis) != 3 {
		return fmt.Errorf("%w: rotate axis", ErrBadVector)
	}
	return nil
}

// CheckSamples reports whether n is a usable sample count. Zero means
// "use the default".
func CheckSamples(n int) error {
	if n < 0 || n > MaxSamples {
		return fmt.Errorf("%w: %d", ErrBadSamples, n)
	}
	return nil
}

// SamplesOrDefault returns the file-wide sample count, or DefaultSamples.
func (c *Config) SamplesOrDefault() int {
	if c.Samples > 0 {
		return c.Samples
	}
	return DefaultSamples
}

// Level parses LogLevel. Unknown or empty levels mean info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Build constructs the segment with translate and rotate applied, and
// returns it with the sample count to use for it. The config must have
// passed Validate.
func (s SegmentConfig) Build(defaultSamples int) (curve3d.Segment, int) {
	p := s.Points
	seg := curve3d.NewSegmentFrom(vec(p[0]), vec(p[1]), vec(p[2]), vec(p[3]))

	if s.Translate != nil {
		seg.Translate(vec(s.Translate))
	}
	if s.Rotate != nil {
		radians := s.Rotate.Degrees * float32(math.Pi/180)
		seg.Rotate(curve3d.RotateAxis(vec(s.Rotate.Axis), radians))
	}

	samples := defaultSamples
	if s.Samples > 0 {
		samples = s.Samples
	}
	return seg, samples
}

// NewWheel returns the configured wheel, or nil if none is configured.
func (w *WheelConfig) NewWheel() *drive.Wheel {
	if w == nil {
		return nil
	}
	wheel := drive.NewWheel(w.Diameter)
	if w.RevolveModifier != 0 {
		wheel.RevolveModifier = w.RevolveModifier
	}
	return wheel
}

func vec(c []float32) curve3d.Vec3 {
	return curve3d.V3(c[0], c[1], c[2])
}
