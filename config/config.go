package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Notables NotablesConfig `yaml:"notables"`
}

// NotablesConfig is the project configuration.
type NotablesConfig struct {
	Generate  GenerateConfig  `yaml:"generate"`
	Summarize SummarizeConfig `yaml:"summarize"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GenerateConfig controls the synthetic dataset generator.
type GenerateConfig struct {
	Rows            int                `yaml:"rows"`
	Out             string             `yaml:"out"`
	DuplicateRatio  float64            `yaml:"duplicate_ratio"`
	WindowDays      int                `yaml:"window_days"`
	Pools           PoolsConfig        `yaml:"pools"`
	SeverityWeights map[string]float64 `yaml:"severity_weights"`
	StatusWeights   map[string]float64 `yaml:"status_weights"`
}

// PoolsConfig defines the value pools synthetic fields are drawn from.
type PoolsConfig struct {
	SrcNet     string   `yaml:"src_net"`
	DestNet    string   `yaml:"dest_net"`
	Signatures []string `yaml:"signatures"`
	Categories []string `yaml:"categories"`
	FileNames  []string `yaml:"file_names"`
	UserDomain string   `yaml:"user_domain"`
	UserCount  int      `yaml:"user_count"`
}

// SummarizeConfig controls the noise summarizer.
type SummarizeConfig struct {
	Input        string       `yaml:"input"`
	LookbackDays int          `yaml:"lookback_days"`
	MinCluster   int          `yaml:"min_cluster"`
	Output       OutputConfig `yaml:"output"`
}

// OutputConfig controls the optional cluster export.
type OutputConfig struct {
	Mode string           `yaml:"mode"` // table|json
	File FileOutputConfig `yaml:"file"`
}

// FileOutputConfig config for local file output.
type FileOutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls logging output.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills every unset field with the documented default.
func ApplyDefaults(cfg *Config) {
	g := &cfg.Notables.Generate
	if g.Rows <= 0 {
		g.Rows = 20000
	}
	if g.Out == "" {
		g.Out = "notables.csv"
	}
	if g.DuplicateRatio <= 0 {
		g.DuplicateRatio = 0.05
	}
	if g.WindowDays <= 0 {
		g.WindowDays = 90
	}
	if g.Pools.SrcNet == "" {
		g.Pools.SrcNet = "10.0.0.0/16"
	}
	if g.Pools.DestNet == "" {
		g.Pools.DestNet = "192.168.0.0/16"
	}
	if len(g.Pools.Signatures) == 0 {
		g.Pools.Signatures = []string{
			"EICAR-TEST-FILE", "Meterpreter Beacon", "Cobalt Strike Loader",
			"Unknown Hash Hit", "Suspicious PowerShell", "Ransomware Behaviour",
		}
	}
	if len(g.Pools.Categories) == 0 {
		g.Pools.Categories = []string{
			"malware", "command-and-control", "lateral-movement",
			"priv-esc", "persistence", "exfiltration",
		}
	}
	if len(g.Pools.FileNames) == 0 {
		g.Pools.FileNames = []string{
			"calc.exe", "svchost.exe", "powershell.exe", "runme.tmp",
			"install.ps1", "invoice.docx", "setup.msi",
		}
	}
	if g.Pools.UserDomain == "" {
		g.Pools.UserDomain = "CORP"
	}
	if g.Pools.UserCount <= 0 {
		g.Pools.UserCount = 200
	}
	if len(g.SeverityWeights) == 0 {
		g.SeverityWeights = map[string]float64{
			"low": 4, "medium": 4, "high": 2, "critical": 1,
		}
	}
	if len(g.StatusWeights) == 0 {
		g.StatusWeights = map[string]float64{
			"closed without escalation": 0.8,
			"closed with escalation":    0.2,
		}
	}

	s := &cfg.Notables.Summarize
	if s.Input == "" {
		s.Input = "notables.csv"
	}
	if s.LookbackDays <= 0 {
		s.LookbackDays = 30
	}
	if s.MinCluster <= 0 {
		s.MinCluster = 5
	}
	if s.Output.Mode == "" {
		s.Output.Mode = "table"
	}
	if s.Output.File.Path == "" {
		s.Output.File.Path = "output/clusters.jsonl"
	}

	l := &cfg.Notables.Logging
	if l.Level == "" {
		l.Level = "info"
	}
}
