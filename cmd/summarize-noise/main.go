package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"notables/config"
	"notables/internal/analyzer"
	"notables/internal/csvio"
	"notables/internal/logger"
	"notables/internal/output/clusterjson"
	"notables/internal/output/clustertable"
)

func findConfigFile() string {
	if _, err := os.Stat("notables.yml"); err == nil {
		return "notables.yml"
	}

	exePath, err := os.Executable()
	if err == nil {
		path := filepath.Join(filepath.Dir(exePath), "notables.yml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadConfig() *config.Config {
	cfg := &config.Config{}
	if path := findConfigFile(); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	config.ApplyDefaults(cfg)
	return cfg
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := loadConfig()
	sc := cfg.Notables.Summarize

	// Positional overrides: [csv] [days] [min_cluster].
	args := os.Args[1:]
	if len(args) > 0 {
		sc.Input = args[0]
	}
	if len(args) > 1 {
		days, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid lookback days %q: %v\n", args[1], err)
			return 2
		}
		sc.LookbackDays = days
	}
	if len(args) > 2 {
		minCluster, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid minimum cluster size %q: %v\n", args[2], err)
			return 2
		}
		sc.MinCluster = minCluster
	}

	lc := cfg.Notables.Logging
	if err := logger.Init(lc.Enabled, lc.Level, lc.File, lc.Console); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	rows, err := csvio.ReadNotables(sc.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load notables: %v\n", err)
		return 1
	}
	logger.Infof("Loaded %d notables from %s", len(rows), sc.Input)

	clusters, focused := analyzer.Summarize(rows, analyzer.Config{
		LookbackDays: sc.LookbackDays,
		MinCluster:   sc.MinCluster,
	}, time.Now())

	if focused == 0 {
		fmt.Println("No matching alerts in window; nothing to report.")
		return 0
	}
	if len(clusters) == 0 {
		fmt.Printf("No clusters >= %d alerts. Try lowering the minimum cluster size.\n", sc.MinCluster)
		return 0
	}

	fmt.Println("\nDuplicate alert clusters (non-escalated)")
	fmt.Println()
	clustertable.Write(os.Stdout, clusters)

	if sc.Output.Mode == "json" {
		w, err := clusterjson.NewWriter(sc.Output.File.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create cluster export: %v\n", err)
			return 1
		}
		defer w.Close()
		if err := w.WriteClusters(clusters); err != nil {
			fmt.Fprintf(os.Stderr, "failed to export clusters: %v\n", err)
			return 1
		}
		logger.Infof("Exported %d clusters to %s", len(clusters), sc.Output.File.Path)
	}

	return 0
}
