package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/pith"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML schema for default extraction options. Every field
// is optional: zero values leave the built-in default untouched, so a config
// file only has to name what it changes. Toggles that default to on use
// pointers so the file can switch them off. Durations are Go duration
// strings such as "45s" or "1h".
type FileConfig struct {
	Adapter            string `yaml:"adapter"`
	MinParagraphLength int    `yaml:"minParagraphLength"`
	Timeout            string `yaml:"timeout"`

	Metadata       *bool `yaml:"metadata"`
	Sections       *bool `yaml:"sections"`
	Tables         bool  `yaml:"tables"`
	Lists          bool  `yaml:"lists"`
	Embeds         bool  `yaml:"embeds"`
	StructuredData bool  `yaml:"structuredData"`
	Readability    bool  `yaml:"readability"`

	Cleaning struct {
		Aggressive      bool     `yaml:"aggressive"`
		RemoveSelectors []string `yaml:"removeSelectors"`
		KeepSelectors   []string `yaml:"keepSelectors"`
	} `yaml:"cleaning"`

	Cache struct {
		Enabled    *bool  `yaml:"enabled"`
		TTL        string `yaml:"ttl"`
		MaxSizeMB  int    `yaml:"maxSizeMb"`
		Strategy   string `yaml:"strategy"`
		Persistent bool   `yaml:"persistent"`
	} `yaml:"cache"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return fc, nil
}

// Apply overlays the file values onto opts.
func (fc FileConfig) Apply(opts *pith.ExtractionOptions) error {
	if fc.Adapter != "" {
		opts.Adapter = fc.Adapter
	}
	if fc.MinParagraphLength > 0 {
		opts.MinParagraphLength = fc.MinParagraphLength
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		opts.Timeout = d
	}

	if fc.Metadata != nil {
		opts.IncludeMetadata = *fc.Metadata
	}
	if fc.Sections != nil {
		opts.DetectSections = *fc.Sections
	}
	if fc.Tables {
		opts.ExtractTables = true
	}
	if fc.Lists {
		opts.ExtractLists = true
	}
	if fc.Embeds {
		opts.ExtractEmbeds = true
	}
	if fc.StructuredData {
		opts.ExtractStructuredData = true
	}
	if fc.Readability {
		opts.CalculateReadability = true
	}

	if fc.Cleaning.Aggressive {
		opts.Cleaning.Aggressive = true
	}
	if len(fc.Cleaning.RemoveSelectors) > 0 {
		opts.Cleaning.RemoveSelectors = fc.Cleaning.RemoveSelectors
	}
	if len(fc.Cleaning.KeepSelectors) > 0 {
		opts.Cleaning.KeepSelectors = fc.Cleaning.KeepSelectors
	}

	if fc.Cache.Enabled != nil {
		opts.Cache.Enabled = *fc.Cache.Enabled
	}
	if fc.Cache.TTL != "" {
		d, err := time.ParseDuration(fc.Cache.TTL)
		if err != nil {
			return fmt.Errorf("invalid cache ttl %q: %w", fc.Cache.TTL, err)
		}
		opts.Cache.TTL = d
	}
	if fc.Cache.MaxSizeMB > 0 {
		opts.Cache.MaxSizeMB = fc.Cache.MaxSizeMB
	}
	if fc.Cache.Strategy != "" {
		opts.Cache.Strategy = pith.CacheStrategy(fc.Cache.Strategy)
	}
	if fc.Cache.Persistent {
		opts.Cache.Persistent = true
	}
	return nil
}
