// Command lumol-nblist drives a neighbor-list backend over a static Argon
// lattice and reports pair-enumeration statistics. It exists to exercise
// package neighbors end to end, the way a real integrator loop would,
// without pulling in force evaluation or time integration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/nielsle/lumol/cell"
	"github.com/nielsle/lumol/config"
	"github.com/nielsle/lumol/neighbors"
	"github.com/nielsle/lumol/particles"
	lumolrand "github.com/nielsle/lumol/rand"
	"github.com/rs/zerolog"
)

var (
	configPath = flag.String("config", "", "Path to a YAML configuration file.")
	backendOpt = flag.String("backend", "", "Override the config's backend: \"all-pairs\" or \"directed-linked-list\".")
)

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if *configPath == "" {
		log.Fatal("Must specify -config.")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backendOpt != "" {
		cfg.Backend = *backendOpt
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	system := particles.CubicLattice(cfg.LatticeSize, cfg.LatticeSpacing, "Ar", 39.948)
	logger.Info().Int("natoms", system.Len()).Msg("built lattice")

	const boltzmannConstant = 0.0019872041 // kcal/(mol*K)
	system.SeedBoltzmannVelocities(300.0, boltzmannConstant, lumolrand.NewStandard(cfg.Seed))

	box := cell.Cubic(cfg.CellSide)

	var nb *neighbors.Neighbors
	switch cfg.Backend {
	case "all-pairs":
		nb = neighbors.NewAllPairsNeighbors()
	case "directed-linked-list":
		nb, err = neighbors.NewDirectedLinkedListNeighbors(
			cfg.MaxCutoff, cfg.Skin, cfg.Delay, cfg.StepsPerUpdateCheck, cfg.UpdatesPerSanityCheck)
		if err != nil {
			log.Fatalf("Failed to build neighbor list: %v", err)
		}
		if dll, ok := nb.Backend().(*neighbors.DirectedLinkedList); ok {
			dll.SetLogger(logger)
		}
	default:
		log.Fatalf("Unknown backend %q", cfg.Backend)
	}

	nb.UpdateNeighbors(box, system.Position)

	var pairCount uint64
	for step := 0; step < cfg.Steps; step++ {
		nb.EnsureUpdated(box, system.Position)
		nb.EachI(func(i int) {
			var local uint64
			nb.EachJ(i, func(j int) {
				local++
			})
			atomic.AddUint64(&pairCount, local)
		})
	}

	fmt.Printf("Processed %d steps over %d particles, %d total pair visits\n",
		cfg.Steps, system.Len(), pairCount)
	nb.PrintStatistics()
}
