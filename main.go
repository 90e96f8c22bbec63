package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"dungeondaily/pkg/engine/logging"
	"dungeondaily/pkg/game/config"
	"dungeondaily/pkg/game/daily"
	"dungeondaily/pkg/game/devtools"
	"dungeondaily/pkg/game/gameplay"
	"dungeondaily/pkg/game/remote"
	"dungeondaily/pkg/game/renderer"
	ebitenrenderer "dungeondaily/pkg/game/renderer/ebiten"
	"dungeondaily/pkg/game/renderer/tui"
	"dungeondaily/pkg/game/state"
)

func main() {
	configPath := flag.String("config", "dungeondaily.yaml", "settings file (missing file means defaults)")
	frontend := flag.String("frontend", "", "frontend to start: tui, ebiten or serve")
	date := flag.String("date", "", "play the dungeon for this date (YYYY-MM-DD) instead of today")
	seed := flag.Int64("seed", -1, "play the dungeon for this seed (overrides -date)")
	policy := flag.String("policy", "", "enemy contact policy: compat or remove")
	addr := flag.String("addr", "", "listen address for -frontend serve")
	dump := flag.Bool("dump", false, "print the generated dungeon and exit")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *frontend, *policy, *addr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	config.SetCurrent(cfg)

	level, _ := logging.ParseLevel(cfg.LogLevel)
	log := logging.New(os.Stderr, level, cfg.Frontend != config.FrontendServe)

	gotext.Configure(cfg.LocalesDir, cfg.Locale, "default")

	if err := run(cfg, log, *date, *seed, *dump); err != nil {
		log.Error().Err(err).Msg("dungeondaily failed")
		os.Exit(1)
	}
}

// loadConfig reads the settings file and applies command-line overrides
func loadConfig(path, frontend, policy, addr, logLevel string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if frontend != "" {
		cfg.Frontend = frontend
	}
	if policy != "" {
		cfg.EnemyPolicy = policy
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSeed picks the seed from -seed, then -date, then today's date
func resolveSeed(date string, seed int64) (int64, error) {
	if seed >= 0 {
		return seed, nil
	}
	if date != "" {
		return daily.SeedForString(date)
	}
	return daily.Today(), nil
}

func run(cfg *config.Config, log zerolog.Logger, date string, seedFlag int64, dump bool) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	if cfg.Frontend == config.FrontendServe && !dump {
		return serve(cfg, policy, log)
	}

	seed, err := resolveSeed(date, seedFlag)
	if err != nil {
		return err
	}

	if dump {
		g, err := gameplay.GenerateDungeon(seed, policy)
		if err != nil {
			return err
		}
		return devtools.Dump(os.Stdout, g)
	}

	g, err := gameplay.BuildGame(seed, policy)
	if err != nil {
		return err
	}
	log.Debug().Int64("seed", seed).Str("run_id", g.RunID.String()).Str("policy", policy.String()).Msg("dungeon generated")

	opts := gameplay.Options{ShareURL: cfg.ShareURL}

	switch cfg.Frontend {
	case config.FrontendEbiten:
		e := ebitenrenderer.New(ebitenrenderer.Options{
			Width:          cfg.Window.Width,
			Height:         cfg.Window.Height,
			TileSize:       cfg.Window.TileSize,
			SwipeThreshold: cfg.SwipeThreshold,
		}, log)
		renderer.SetRenderer(e)
		e.Init()
		return e.Run(func() error {
			return gameplay.Run(g, renderer.Current, opts)
		})

	default:
		t := tui.New()
		renderer.SetRenderer(t)
		if err := gameplay.Run(g, renderer.Current, opts); err != nil {
			return err
		}
		if t.ReadErr != nil && !t.Interrupted() {
			log.Debug().Err(t.ReadErr).Msg("input ended")
		}
		fmt.Println()
		fmt.Println(gotext.Get("GOODBYE"))
		return nil
	}
}

// serve runs the remote adapter until interrupted
func serve(cfg *config.Config, policy state.EnemyPolicy, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := remote.New(remote.Options{
		Policy:         policy,
		ShareURL:       cfg.ShareURL,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, log)
	return srv.Run(ctx, cfg.Server.Addr)
}
