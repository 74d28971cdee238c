package pixelart

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration for both stylizers.
//
//	dot_size = 10
//
//	[stylize]
//	canonical = 1024
//	output = 800
//	canny_low = 50
//	canny_high = 70
//	mask_threshold = 200
//	thicken = 0
//
//	[[tier]]
//	name = "common"
//	min = 1
//	max = 3000
//	tile = 16
type Config struct {
	DotSize int           `toml:"dot_size"`
	Stylize StylizeConfig `toml:"stylize"`
	Tiers   Tiers         `toml:"tier"`
}

// StylizeConfig holds the Stylizer parameters.
type StylizeConfig struct {
	Canonical     int     `toml:"canonical"`
	Output        int     `toml:"output"`
	CannyLow      float64 `toml:"canny_low"`
	CannyHigh     float64 `toml:"canny_high"`
	MaskThreshold int     `toml:"mask_threshold"`
	Thicken       int     `toml:"thicken"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	s := NewStylizer()
	return Config{
		DotSize: DefaultDotSize,
		Stylize: StylizeConfig{
			Canonical:     s.CanonicalSize,
			Output:        s.OutputSize,
			CannyLow:      s.CannyLow,
			CannyHigh:     s.CannyHigh,
			MaskThreshold: int(s.MaskThreshold),
			Thicken:       s.ThickenSize,
		},
		Tiers: DefaultTiers(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing
// from the file keep their defaults; a file that lists any [[tier]]
// replaces the whole tier table.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Tiers = nil

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown config key %q in %s", ErrInvalidParameter, undecoded[0].String(), path)
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultTiers()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against the ranges the stylizers accept.
func (c Config) Validate() error {
	if c.DotSize < 1 {
		return fmt.Errorf("%w: dot_size %d", ErrInvalidParameter, c.DotSize)
	}
	if c.Stylize.MaskThreshold < 0 || c.Stylize.MaskThreshold > 255 {
		return fmt.Errorf("%w: mask_threshold %d", ErrInvalidParameter, c.Stylize.MaskThreshold)
	}
	if err := NewStylizer(c.StylizerOptions()...).Validate(); err != nil {
		return err
	}
	return c.Tiers.Validate()
}

// StylizerOptions converts the [stylize] table into Stylizer options.
func (c Config) StylizerOptions() []StylizerOption {
	return []StylizerOption{
		WithCanonicalSize(c.Stylize.Canonical),
		WithOutputSize(c.Stylize.Output),
		WithCannyThresholds(c.Stylize.CannyLow, c.Stylize.CannyHigh),
		WithMaskThreshold(uint8(c.Stylize.MaskThreshold)),
		WithThickening(c.Stylize.Thicken),
	}
}
