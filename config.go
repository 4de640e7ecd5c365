package sid

import (
	"crypto/rand"
	"encoding/binary"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of a SID solve. The zero value is not
// usable directly; use DefaultConfig to get spec-mandated defaults.
type Config struct {
	SPMaxIterations       int     `yaml:"sp_max_iterations"`
	SPEpsilon             float64 `yaml:"sp_epsilon"`
	ZeroEpsilon           float64 `yaml:"zero_epsilon"`
	ParamagneticThreshold float64 `yaml:"paramagnetic_threshold"`
	Fraction              float64 `yaml:"fraction"`
	Seed                  int64   `yaml:"seed"`
	WalkSATFlipFactor     int     `yaml:"walksat_flip_factor"`
	WalkProbability       float64 `yaml:"walk_probability"`
}

// DefaultConfig returns the parameter defaults given in the specification.
func DefaultConfig() Config {
	return Config{
		SPMaxIterations:       1000,
		SPEpsilon:             0.01,
		ZeroEpsilon:           1e-16,
		ParamagneticThreshold: 0.01,
		Fraction:              0.05,
		Seed:                  0,
		WalkSATFlipFactor:     100,
		WalkProbability:       0.5,
	}
}

// LoadConfig reads a YAML file and overlays its fields onto DefaultConfig.
// Fields absent from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveSeed returns cfg.Seed, drawing a fresh one from a nondeterministic
// entropy source and recording it back into cfg if Seed == 0. This follows
// the evident intent of the original source's `if (seed = 0) initialSeed =
// rd();` (an assignment where a comparison was clearly meant).
func (cfg *Config) ResolveSeed() int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("sid: failed to draw entropy for seed: " + err.Error())
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	if seed == 0 {
		seed = 1
	}
	cfg.Seed = seed
	return seed
}
