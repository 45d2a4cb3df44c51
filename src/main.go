package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sweepsim/src/building"
	"sweepsim/src/config"
	"sweepsim/src/elev"
	"sweepsim/src/manifest"
	"sweepsim/src/sim"
	"sweepsim/src/types"
	"sweepsim/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", config.EnvFile, "Path to a .env file")
	manifestPath := flag.String("manifest", "", "Path to the passenger manifest")
	floors := flag.Int("floors", config.NumFloors, "Number of floors in the building")
	capacity := flag.Int("capacity", config.Capacity, "Elevator capacity")
	startFloor := flag.Int("start", config.StartFloor, "Floor the elevator starts on")
	logLevel := flag.String("log-level", config.LogLevel, "Log level: debug, info, warn or error")
	trace := flag.Bool("trace", false, "Print every boarding, disembarking and move")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fatal("Failed to load config", err)
		}
	}
	if err := cfg.LoadEnv(*envPath, *envPath == config.EnvFile); err != nil {
		fatal("Failed to load environment", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "manifest":
			cfg.Manifest = *manifestPath
		case "floors":
			cfg.Floors = *floors
		case "capacity":
			cfg.Capacity = *capacity
		case "start":
			cfg.StartFloor = *startFloor
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.Manifest == "" && flag.NArg() > 0 {
		cfg.Manifest = flag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		fatal("Invalid configuration", err)
	}
	level, _ := cfg.Level()
	if err := elev.InitLogger(level, cfg.LogFile); err != nil {
		fatal("Failed to set up logging", err)
	}
	if cfg.Manifest == "" {
		fatal("No manifest given", fmt.Errorf("use -manifest or %sMANIFEST", config.EnvPrefix))
	}

	b, err := building.New(cfg.Floors)
	if err != nil {
		fatal("Failed to create building", err)
	}
	elevator, err := elev.New(cfg.Capacity)
	if err != nil {
		fatal("Failed to create elevator", err)
	}
	elevator.SetFloor(cfg.StartFloor)

	records, err := manifest.Load(cfg.Manifest, cfg.Floors)
	if err != nil {
		fatal("Failed to load manifest", err)
	}

	var sink types.EventSink = sim.SlogSink{}
	if *trace {
		sink = sim.MultiSink{sink, sim.ConsoleSink{W: os.Stdout}}
	}
	s := sim.New(b, elevator, sink)
	if _, err := manifest.Populate(s, records); err != nil {
		fatal("Failed to populate building", err)
	}

	ticks := s.Run()
	if *trace {
		utils.PrintSummary(os.Stderr, s.Result())
	}
	fmt.Println(ticks)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
