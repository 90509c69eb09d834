package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"battery-case/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load investment parameters from a preset YAML (e.g. presets/*.yaml).
	// If both PresetFile and Investment are provided, Investment overrides PresetFile.
	PresetFile string           `yaml:"preset_file"`
	Investment InvestmentConfig `yaml:"investment"`
}

// InvestmentConfig uses pointers so an explicit 0 can be told apart from "not set".
type InvestmentConfig struct {
	Name                string   `yaml:"name"`
	CapacityKWh         *float64 `yaml:"capacity_kwh"`
	CRate               *float64 `yaml:"c_rate"`
	CostPerKWh          *float64 `yaml:"cost_per_kwh"`
	GridInvestment      *float64 `yaml:"grid_investment"`
	GrossReturnPer100KW *float64 `yaml:"gross_return_per_100kw"`
	PoolerCutPct        *float64 `yaml:"pooler_cut_pct"`
	DiscountRate        *float64 `yaml:"discount_rate"`
	HorizonYears        *int     `yaml:"horizon_years"`
}

// Load reads, merges and validates a scenario. Unset fields take Defaults().
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If preset_file is set, load it and merge in any explicit overrides from c.Investment.
	if c.PresetFile != "" {
		presetPath := c.PresetFile
		if !filepath.IsAbs(presetPath) {
			// Relative paths resolve against the config file directory first, then cwd.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		loaded, err := LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		c.Investment = MergeInvestment(loaded, c.Investment)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := Validate(c.Investment.ToModelParams()); err != nil {
		return fmt.Errorf("investment config invalid: %w", err)
	}
	return nil
}

// ToModelParams resolves the config against Defaults().
func (i InvestmentConfig) ToModelParams() model.InvestmentParameters {
	out := Defaults()
	setF(&out.CapacityKWh, i.CapacityKWh)
	setF(&out.CRate, i.CRate)
	setF(&out.CostPerKWh, i.CostPerKWh)
	setF(&out.GridInvestment, i.GridInvestment)
	setF(&out.GrossReturnPer100KW, i.GrossReturnPer100KW)
	setF(&out.PoolerCutPct, i.PoolerCutPct)
	setF(&out.DiscountRate, i.DiscountRate)
	if i.HorizonYears != nil {
		out.HorizonYears = *i.HorizonYears
	}
	return out
}

func setF(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

type presetFileWrapper struct {
	Investment InvestmentConfig `yaml:"investment"`
}

// LoadPreset reads the investment block of a preset YAML file.
func LoadPreset(path string) (InvestmentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return InvestmentConfig{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return InvestmentConfig{}, err
	}
	return w.Investment, nil
}

// MergeInvestment overlays the fields set in override onto base.
func MergeInvestment(base, override InvestmentConfig) InvestmentConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityKWh != nil {
		out.CapacityKWh = override.CapacityKWh
	}
	if override.CRate != nil {
		out.CRate = override.CRate
	}
	if override.CostPerKWh != nil {
		out.CostPerKWh = override.CostPerKWh
	}
	if override.GridInvestment != nil {
		out.GridInvestment = override.GridInvestment
	}
	if override.GrossReturnPer100KW != nil {
		out.GrossReturnPer100KW = override.GrossReturnPer100KW
	}
	if override.PoolerCutPct != nil {
		out.PoolerCutPct = override.PoolerCutPct
	}
	if override.DiscountRate != nil {
		out.DiscountRate = override.DiscountRate
	}
	if override.HorizonYears != nil {
		out.HorizonYears = override.HorizonYears
	}
	return out
}
