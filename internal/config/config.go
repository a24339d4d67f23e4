// Package config loads PhoenixConfig from a YAML file. Monetary values
// are written as quoted strings in the file and parsed as exact decimals;
// the loader never routes them through float64.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/phoenix/internal/domain"
	"github.com/alexanderramin/phoenix/internal/validate"
)

type fileConfig struct {
	SGALimitBlind     string `yaml:"sga_limit_blind"`
	IRWEEnabled       bool   `yaml:"irwe_enabled"`
	MinReasonableComp string `yaml:"min_reasonable_comp"`
	Timezone          string `yaml:"timezone"`
}

// Load reads a phoenix.yaml file into a PhoenixConfig.
// sga_limit_blind is required: the SGA threshold is governance-locked and
// has no safe default.
func Load(path string) (domain.PhoenixConfig, error) {
	var cfg domain.PhoenixConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.SGALimitBlind == "" {
		return cfg, fmt.Errorf("config %s: sga_limit_blind is required", path)
	}
	limit, err := validate.EnsureDecimal(fc.SGALimitBlind)
	if err != nil {
		return cfg, fmt.Errorf("config %s: sga_limit_blind: %w", path, err)
	}
	cfg.SGALimitBlind = validate.QuantizeMoney(limit)
	cfg.IRWEEnabled = fc.IRWEEnabled

	if fc.MinReasonableComp != "" {
		minRC, err := validate.EnsureDecimal(fc.MinReasonableComp)
		if err != nil {
			return cfg, fmt.Errorf("config %s: min_reasonable_comp: %w", path, err)
		}
		q := validate.QuantizeMoney(minRC)
		cfg.MinReasonableComp = &q
	}

	cfg.Timezone = fc.Timezone
	if cfg.Timezone == "" {
		cfg.Timezone = domain.DefaultTimezone
	}
	return cfg, nil
}
