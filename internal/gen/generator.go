package gen

import (
	"fmt"
	"math/rand"
	"net"
	"time"

	"notables/pkg/models"
)

// Config controls dataset generation.
type Config struct {
	Rows           int
	WindowDays     int
	DuplicateRatio float64
	Pools          Pools
}

// Generator builds synthetic notable datasets.
type Generator struct {
	cfg     Config
	srcNet  *net.IPNet
	destNet *net.IPNet
	rng     *rand.Rand
	now     func() time.Time
}

// New creates a generator. The rng is caller-supplied so runs can be
// seeded for reproducibility.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 90
	}
	if cfg.DuplicateRatio < 0 {
		cfg.DuplicateRatio = 0
	}

	_, srcNet, err := net.ParseCIDR(cfg.Pools.SrcNet)
	if err != nil {
		return nil, fmt.Errorf("parse src network %q: %w", cfg.Pools.SrcNet, err)
	}
	_, destNet, err := net.ParseCIDR(cfg.Pools.DestNet)
	if err != nil {
		return nil, fmt.Errorf("parse dest network %q: %w", cfg.Pools.DestNet, err)
	}

	return &Generator{
		cfg:     cfg,
		srcNet:  srcNet,
		destNet: destNet,
		rng:     rng,
		now:     time.Now,
	}, nil
}

// Generate builds the full dataset: base rows spread across the window,
// injected exact duplicates under "closed without escalation", shuffled.
func (g *Generator) Generate() []models.Notable {
	rows := g.cfg.Rows
	if rows <= 0 {
		return nil
	}

	perDay := rows / g.cfg.WindowDays
	remainder := rows - perDay*g.cfg.WindowDays

	records := make([]models.Notable, 0, rows)
	for offset := 0; offset < g.cfg.WindowDays; offset++ {
		for i := 0; i < perDay; i++ {
			records = append(records, g.synthRow(offset))
		}
	}
	for i := 0; i < remainder; i++ {
		records = append(records, g.synthRow(g.rng.Intn(g.cfg.WindowDays)))
	}

	records = g.injectDuplicates(records)

	g.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	return records
}

// injectDuplicates samples rows*ratio existing records without
// replacement, forces their status to "closed without escalation", and
// appends the copies. These are the clusters the summarizer should find.
func (g *Generator) injectDuplicates(records []models.Notable) []models.Notable {
	dupes := int(float64(g.cfg.Rows) * g.cfg.DuplicateRatio)
	if dupes <= 0 || len(records) == 0 {
		return records
	}
	if dupes > len(records) {
		dupes = len(records)
	}

	for _, idx := range g.rng.Perm(len(records))[:dupes] {
		dup := records[idx]
		dup.StatusLabel = models.StatusClosedWithoutEscalation
		records = append(records, dup)
	}
	return records
}

func (g *Generator) synthRow(dayOffset int) models.Notable {
	p := g.cfg.Pools
	return models.Notable{
		Time:        g.now().AddDate(0, 0, -dayOffset),
		Src:         randomIP(g.rng, g.srcNet),
		Dest:        randomIP(g.rng, g.destNet),
		Signature:   choice(g.rng, p.Signatures),
		Category:    choice(g.rng, p.Categories),
		FileName:    choice(g.rng, p.FileNames),
		Severity:    WeightedChoice(g.rng, p.SeverityWeights),
		User:        choice(g.rng, p.Users),
		StatusLabel: WeightedChoice(g.rng, p.StatusWeights),
	}
}
