package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vectorfield/config"
	"github.com/pthm-cable/vectorfield/game"
	"github.com/pthm-cable/vectorfield/systems"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	frames := flag.Int("frames", 600, "Frames to simulate in headless mode")
	fps := flag.Float64("fps", 0, "Synthetic frame rate for headless mode (0 = screen.target_fps)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and snapshot")
	snapshot := flag.Bool("snapshot", false, "Write snapshot.png after a headless run (needs -output-dir)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	noiseSeed := cfg.Noise.Seed
	if noiseSeed == 0 {
		noiseSeed = rngSeed
	}
	field, err := systems.NewNoiseField(cfg.Noise.Backend, noiseSeed)
	if err != nil {
		slog.Error("failed to create noise field", "error", err)
		os.Exit(1)
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Frames:    *frames,
		FPS:       *fps,
		Snapshot:  *snapshot,
	}

	if *headless {
		// Headless mode - CPU trail buffer, no raylib window
		if _, err := game.RunHeadless(cfg, field, opts); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graphical mode
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), game.Title(cfg))
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, field, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}
