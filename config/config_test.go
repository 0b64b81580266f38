package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaultsFillsEverything(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	g := cfg.Notables.Generate
	if g.Rows != 20000 || g.Out != "notables.csv" {
		t.Fatalf("unexpected generate defaults: rows=%d out=%s", g.Rows, g.Out)
	}
	if g.DuplicateRatio != 0.05 || g.WindowDays != 90 {
		t.Fatalf("unexpected generate defaults: ratio=%f days=%d", g.DuplicateRatio, g.WindowDays)
	}
	if g.Pools.SrcNet != "10.0.0.0/16" || g.Pools.DestNet != "192.168.0.0/16" {
		t.Fatalf("unexpected network defaults: %s %s", g.Pools.SrcNet, g.Pools.DestNet)
	}
	if len(g.Pools.Signatures) != 6 || len(g.Pools.Categories) != 6 || len(g.Pools.FileNames) != 7 {
		t.Fatalf("unexpected pool sizes: %d %d %d",
			len(g.Pools.Signatures), len(g.Pools.Categories), len(g.Pools.FileNames))
	}
	if g.Pools.UserDomain != "CORP" || g.Pools.UserCount != 200 {
		t.Fatalf("unexpected user pool defaults: %s %d", g.Pools.UserDomain, g.Pools.UserCount)
	}
	if g.SeverityWeights["low"] != 4 || g.SeverityWeights["critical"] != 1 {
		t.Fatalf("unexpected severity weights: %v", g.SeverityWeights)
	}
	if g.StatusWeights["closed without escalation"] != 0.8 {
		t.Fatalf("unexpected status weights: %v", g.StatusWeights)
	}

	s := cfg.Notables.Summarize
	if s.Input != "notables.csv" || s.LookbackDays != 30 || s.MinCluster != 5 {
		t.Fatalf("unexpected summarize defaults: %+v", s)
	}
	if s.Output.Mode != "table" {
		t.Fatalf("unexpected output mode: %s", s.Output.Mode)
	}

	if cfg.Notables.Logging.Level != "info" {
		t.Fatalf("unexpected logging level: %s", cfg.Notables.Logging.Level)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Notables.Generate.Rows = 50000
	cfg.Notables.Summarize.MinCluster = 8
	ApplyDefaults(cfg)

	if cfg.Notables.Generate.Rows != 50000 {
		t.Fatalf("explicit row count overwritten: %d", cfg.Notables.Generate.Rows)
	}
	if cfg.Notables.Summarize.MinCluster != 8 {
		t.Fatalf("explicit min cluster overwritten: %d", cfg.Notables.Summarize.MinCluster)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notables.yml")
	data := `
notables:
  generate:
    rows: 1000
    duplicate_ratio: 0.1
    pools:
      src_net: 172.16.0.0/16
  summarize:
    lookback_days: 60
    output:
      mode: json
      file:
        path: out/clusters.jsonl
  logging:
    enabled: true
    level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	ApplyDefaults(cfg)

	if cfg.Notables.Generate.Rows != 1000 || cfg.Notables.Generate.DuplicateRatio != 0.1 {
		t.Fatalf("unexpected generate config: %+v", cfg.Notables.Generate)
	}
	if cfg.Notables.Generate.Pools.SrcNet != "172.16.0.0/16" {
		t.Fatalf("src_net not loaded: %s", cfg.Notables.Generate.Pools.SrcNet)
	}
	if cfg.Notables.Generate.Pools.DestNet != "192.168.0.0/16" {
		t.Fatalf("dest_net default not applied: %s", cfg.Notables.Generate.Pools.DestNet)
	}
	if cfg.Notables.Summarize.LookbackDays != 60 || cfg.Notables.Summarize.MinCluster != 5 {
		t.Fatalf("unexpected summarize config: %+v", cfg.Notables.Summarize)
	}
	if cfg.Notables.Summarize.Output.Mode != "json" ||
		cfg.Notables.Summarize.Output.File.Path != "out/clusters.jsonl" {
		t.Fatalf("unexpected output config: %+v", cfg.Notables.Summarize.Output)
	}
	if !cfg.Notables.Logging.Enabled || cfg.Notables.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Notables.Logging)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
