package dhont

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration of an apportioner.
//
// The zero value is valid and equals DefaultConfig: ties on equal votes go to
// the later party, no threshold, degenerate inputs are flagged not rejected.
//
// Example YAML:
//
//	tieBreak: lot
//	lotSeed: 20240609
//	threshold: 0.05
//	rejectDegenerate: true
type Config struct {
	// TieBreak decides rounds where quotients and votes are both equal.
	// One of "latest" (default), "earliest", "lot".
	TieBreak TieBreak `yaml:"tieBreak"`

	// LotSeed seeds the drawing of lots. Only used when TieBreak is "lot".
	// Publish the seed before counting so the draw can be reproduced.
	LotSeed uint64 `yaml:"lotSeed"`

	// Threshold is the electoral threshold as a fraction of the total votes
	// (0.05 means 5%). Parties strictly below it get no seats.
	// Range: [0, 1). Default: 0 (disabled).
	Threshold float64 `yaml:"threshold"`

	// RejectDegenerate makes apportionment fail with ErrDegenerateInput when
	// every eligible party has zero votes, instead of returning an allocation
	// flagged Degenerate.
	RejectDegenerate bool `yaml:"rejectDegenerate"`
}

// DefaultConfig returns a Config with default values.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		TieBreak:         TieBreakLatest,
		LotSeed:          0,
		Threshold:        0,
		RejectDegenerate: false,
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - TieBreak must be a known policy
//   - Threshold must be a number in [0, 1)
//
// Returns:
//   - error: ErrInvalidConfig (wrapped) with an explanation, nil if valid
func (cfg *Config) Validate() error {
	if !cfg.TieBreak.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTieBreak, int(cfg.TieBreak))
	}

	if math.IsNaN(cfg.Threshold) || cfg.Threshold < 0 || cfg.Threshold >= 1 {
		return fmt.Errorf("%w: threshold (%v) must be in [0, 1)", ErrInvalidConfig, cfg.Threshold)
	}

	return nil
}

// ValidateWithWarnings logs settings that are valid but probably unintended.
//
// Parameters:
//   - logger: Logger for warnings (no-op if nil)
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if logger == nil {
		return
	}

	if cfg.LotSeed != 0 && cfg.TieBreak != TieBreakLot {
		logger.Warn("lotSeed is set but tieBreak is not \"lot\"; the seed is ignored",
			"tie_break", cfg.TieBreak.String(),
			"lot_seed", cfg.LotSeed,
		)
	}

	if cfg.Threshold > 0.15 {
		logger.Warn("electoral threshold is unusually high",
			"threshold", cfg.Threshold,
		)
	}
}

// ParseConfig decodes a YAML configuration, rejecting unknown fields.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Decoded and validated configuration (defaults for omitted fields)
//   - error: Decode or validation error
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
//
// Parameters:
//   - path: File path
//
// Returns:
//   - Config: Decoded and validated configuration
//   - error: Read, decode or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return ParseConfig(data)
}
