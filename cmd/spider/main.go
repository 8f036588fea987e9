package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/CodingC1402/Spider-game/internal/application/game"
	"github.com/CodingC1402/Spider-game/internal/application/replay"
	"github.com/CodingC1402/Spider-game/internal/application/scene/preview"
	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/config"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/logging"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/render"
)

const (
	screenW = 320
	screenH = 240

	frameSize  = 16
	atlasCount = 24
)

func main() {
	recordFlag := flag.String("record", "", "Record requested-state events to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded session instead of reading the keyboard")
	galleryFlag := flag.Bool("gallery", false, "Show one spider per player state")
	workersFlag := flag.Int("workers", 0, "Parallel animation workers (0 = sequential)")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("failed to load settings")
	}
	logger, err := logging.New(settings.LogLevel, os.Stderr)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("failed to create logger")
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load replay")
		}
		// a replay only makes sense against the tree it was recorded with
		settings.Tree = data.Tree
	}

	// Load the animation tree using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get config subfs")
	}
	loader := config.NewFSLoader(fsys, "configs")
	file, err := loader.LoadAnimations(settings.Tree)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load animation tree")
	}
	built, err := config.Build(file, state.ParsePlayer)
	if err != nil {
		logger.Fatal().Err(err).Str("tree", settings.Tree).Msg("failed to build animation tree")
	}
	built.Tree.SetLogger(logger)
	logger.Info().Str("tree", settings.Tree).Int("nodes", built.Tree.Len()).Msg("animation tree loaded")

	animator := animation.NewAnimator[state.Player](built.Tree.Freeze(), animation.WithLogger[state.Player](logger))

	scn := preview.New(preview.Config{
		Tree:       settings.Tree,
		Animator:   animator,
		Names:      built.Names,
		Atlas:      render.NewPlaceholderAtlas(frameSize, frameSize, atlasCount),
		Machine:    state.NewMachine(settings.IdleAfter),
		ScreenW:    screenW,
		ScreenH:    screenH,
		DT:         settings.DeltaTime(),
		Gallery:    *galleryFlag,
		Workers:    *workersFlag,
		RecordPath: *recordFlag,
		Replay:     data,
		Logger:     logger,
	})
	g := game.New(scn, screenW, screenH, game.WithDT(settings.DeltaTime()), game.WithLogger(logger))

	// Set up ebiten
	ebiten.SetWindowSize(screenW*settings.Scale, screenH*settings.Scale)
	ebiten.SetWindowTitle("Spider Animation Preview")
	ebiten.SetTPS(settings.TPS)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game stopped")
	}
}
