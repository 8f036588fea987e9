// Command animtree steps an animation tree definition in the terminal.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/config"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/logging"
)

func main() {
	fileFlag := flag.String("file", "cmd/spider/configs/animations/spider.yaml", "Animation tree definition")
	dtFlag := flag.Float64("dt", 1.0/60.0, "Seconds per tick")
	logFlag := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if err := inspect(*fileFlag, *dtFlag, *logFlag); err != nil {
		logger := zerolog.New(os.Stderr)
		logger.Fatal().Err(err).Str("file", *fileFlag).Msg("inspector failed")
	}
}

// inspect loads a tree and runs the terminal inspector until the user quits.
// The log file, if any, is closed before returning.
func inspect(file string, dt float64, logPath string) (err error) {
	logger, closeLog, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = eris.Wrap(cerr, "failed to close log file")
		}
	}()

	built, err := load(file)
	if err != nil {
		return err
	}
	built.Tree.SetLogger(logger)

	return run(NewInspector(built, dt, logger), dt)
}

// openLog returns a debug logger writing to path, or a no-op logger when path is empty
func openLog(path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrap(err, "failed to open log file")
	}
	logger, err := logging.New("debug", f)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, f.Close, nil
}

func load(path string) (*config.Built[state.Player], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read tree file")
	}
	file, err := config.ParseAnimations(data)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse tree file")
	}
	return config.Build(file, state.ParsePlayer)
}

func run(in *Inspector, dt float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "failed to init screen")
	}
	defer screen.Fini()

	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			in.Tick()
		}
		in.Draw(screen)
	}
}
