package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/config"
	"github.com/lixenwraith/bounce/effect"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/input"
	"github.com/lixenwraith/bounce/logging"
	"github.com/lixenwraith/bounce/particle"
	"github.com/lixenwraith/bounce/render"
)

// Build-time version, set with -ldflags "-X main.version=..."
var version = "dev"

type options struct {
	configFile string
	noAudio    bool
	debugLog   bool
}

// runFunc is the program body, swapped out in tests
type runFunc func(ctx context.Context, cfg *config.Config, logger *zap.Logger) error

// screenFactory creates the terminal screen, run calls Init on it
type screenFactory func() (tcell.Screen, error)

func newRootCmd() *cobra.Command {
	return buildRootCmd(viper.New(), func(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
		return run(ctx, cfg, logger, tcell.NewScreen)
	})
}

func buildRootCmd(v *viper.Viper, runner runFunc) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "bounce",
		Short:         "A bouncing logo for your terminal",
		Long:          "bounce moves a logo around the terminal, throws confetti when it gets close to a corner,\nand can overlay its aim at the next corner (press d).",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, opts)
			if err != nil {
				return err
			}

			logger, closeLog, err := logging.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info("starting", zap.String("version", version))
			return runner(cmd.Context(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default ./bounce.yaml if present)")
	flags.Float64("speed", 0, "pixels moved per axis per tick")
	flags.Bool("debug", false, "start with the aim overlay on")
	flags.BoolVar(&opts.noAudio, "no-audio", false, "disable the corner chime")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.BoolVar(&opts.debugLog, "debug-log", false, "log at debug level")

	// Flags override file and env only when set on the command line
	_ = v.BindPFlag("sim.speed", flags.Lookup("speed"))
	_ = v.BindPFlag("sim.debug", flags.Lookup("debug"))
	_ = v.BindPFlag("logger.file", flags.Lookup("log-file"))

	return cmd
}

func loadConfig(v *viper.Viper, opts options) (*config.Config, error) {
	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.noAudio {
		cfg.Audio.Enabled = false
	}
	if opts.debugLog {
		cfg.Logger.Level = "debug"
	}
	return cfg, nil
}

// run owns the terminal for the lifetime of the program
// Shutdown: the loop returns, the context is cancelled, Fini unblocks PollEvent, the pump closes events
func run(parent context.Context, cfg *config.Config, logger *zap.Logger, newScreen screenFactory) error {
	if parent == nil {
		parent = context.Background()
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	finish := sync.OnceFunc(screen.Fini)
	defer finish()
	defer recoverCrash(finish)

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	chime := audio.NewChime(cfg.AudioConfig())
	if err := chime.Start(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer chime.Stop()

	params := cfg.EngineParams()
	particles := particle.NewSystem(cfg.ParticleConfig())
	scene := engine.NewScene(params, particles, effect.Fanout{particles, chime}, logger)
	if cfg.Sim.Debug {
		scene.HandleAction(input.ActionToggleDebug)
	}

	orchestrator := render.NewDefaultOrchestrator(screen, render.Projection{
		CellWidth:  params.CellWidth,
		CellHeight: params.CellHeight,
	})
	loop := engine.NewLoop(scene, orchestrator, screen, keymap, engine.NewRealClock(), logger)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan input.Event, 16)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(guard(finish, func() error {
		defer close(events)
		return input.Pump(gctx, screen, events)
	}))

	g.Go(guard(finish, func() error {
		err := loop.Run(gctx, events)
		// Fini unblocks PollEvent so the pump returns
		cancel()
		finish()
		return err
	}))

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	stats := scene.Stats()
	logger.Info("stopped",
		zap.Uint64("ticks", stats.Ticks),
		zap.Uint64("bounces", stats.Bounces),
		zap.Uint64("corner_hits", stats.CornerHits),
		zap.Int("loop_restarts", loop.Restarts()),
		zap.Duration("uptime", loop.Uptime()),
		zap.Int64("chimes", chime.Played()),
	)
	return err
}

// guard restores the terminal before a goroutine panic kills the process
func guard(reset func(), fn func() error) func() error {
	return func() error {
		defer recoverCrash(reset)
		return fn()
	}
}

func recoverCrash(reset func()) {
	if r := recover(); r != nil {
		reset()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mBOUNCE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
