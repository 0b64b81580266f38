package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"notables/config"
	"notables/internal/csvio"
	"notables/internal/gen"
	"notables/internal/logger"
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
	cfg := loadConfig()
	gc := cfg.Notables.Generate

	// Positional overrides: [rows] [out].
	args := os.Args[1:]
	if len(args) > 0 {
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid row count %q: %v\n", args[0], err)
			os.Exit(2)
		}
		gc.Rows = rows
	}
	if len(args) > 1 {
		gc.Out = args[1]
	}

	lc := cfg.Notables.Logging
	if err := logger.Init(lc.Enabled, lc.Level, lc.File, lc.Console); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	g, err := gen.New(gen.Config{
		Rows:           gc.Rows,
		WindowDays:     gc.WindowDays,
		DuplicateRatio: gc.DuplicateRatio,
		Pools: gen.Pools{
			SrcNet:          gc.Pools.SrcNet,
			DestNet:         gc.Pools.DestNet,
			Signatures:      gc.Pools.Signatures,
			Categories:      gc.Pools.Categories,
			FileNames:       gc.Pools.FileNames,
			Users:           gen.UserPool(gc.Pools.UserDomain, gc.Pools.UserCount),
			SeverityWeights: gc.SeverityWeights,
			StatusWeights:   gc.StatusWeights,
		},
	}, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure generator: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("Generating %d notables across %d days (duplicate ratio %.2f)",
		gc.Rows, gc.WindowDays, gc.DuplicateRatio)

	rows := g.Generate()
	if err := csvio.WriteNotables(gc.Out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write notables: %v\n", err)
		os.Exit(1)
	}

	// %d with an English printer groups thousands: 21000 -> 21,000.
	message.NewPrinter(language.English).Printf("[+] Wrote %d notables -> %s\n", len(rows), gc.Out)
}
