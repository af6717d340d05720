package config

import (
	"markerscan/pkg/klog"
	"markerscan/pkg/scanner"
)

type Config struct {
	Source   scanner.Source
	Sizes    []int
	Detector scanner.DetectorKind
	Output   string
	Log      klog.Config
}

type CompletedConfig struct {
	*Config
}

// Complete fills in what the options left empty.
func (c *Config) Complete() *CompletedConfig {
	if c.Detector == "" {
		c.Detector = scanner.SetDetector
	}
	if c.Output == "" {
		c.Output = "text"
	}
	return &CompletedConfig{c}
}
