package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"heat_capacity_game/internal/logger"
	"heat_capacity_game/internal/repository"
	"heat_capacity_game/internal/service"
	"heat_capacity_game/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

type playOptions struct {
	mute    bool
	logFile string
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long:  "Keys: ←/a/1 heat left, →/d/2 heat right, space/p play or pause, r reset, q/Esc quit.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return play(cmd.Context(), root, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "do not play the completion chime")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (logs are discarded otherwise)")
	return cmd
}

func play(ctx context.Context, root *rootOptions, opts *playOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	// the screen owns stdout, so logs go elsewhere
	var sink io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}
	log := logger.New(cfg.LogLevel, sink)
	defer func() { _ = log.Sync() }()

	conn, err := openDB(cfg.DB.Path, log)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer conn.Close()

	repos := repository.NewRepository(conn)
	game := service.NewGameService(repos.SessionRepo, repos.EventRepo, nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	chime := newChime(opts.mute, log)
	defer chime.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return tui.NewApp(screen, game, chime, log, cfg.Sim.FrameInterval).Run(ctx)
}

// newChime opens the audio device; the game runs silently without one.
func newChime(mute bool, log *logger.Logger) tui.Chime {
	if mute {
		return tui.NopChime{}
	}
	chime, err := tui.NewSpeakerChime()
	if err != nil {
		log.Warnw("audio_init_failed", "err", err)
		return tui.NopChime{}
	}
	return chime
}
