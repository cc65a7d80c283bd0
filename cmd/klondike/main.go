package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/klondike/audio"
	"github.com/lixenwraith/klondike/config"
	"github.com/lixenwraith/klondike/game"
	"github.com/lixenwraith/klondike/input"
	"github.com/lixenwraith/klondike/render"
)

var (
	seedFlag  = flag.Int64("seed", 0, "Deal seed (0 = time based)")
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/klondike.log")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
)

// action is a keyboard command
type action uint8

const (
	actionNone action = iota
	actionQuit
	actionNewDeal
)

func keyAction(key tcell.Key, ch rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return actionQuit
		case 'n', 'N':
			return actionNewDeal
		}
	}
	return actionNone
}

// applyFlags overrides environment settings with flags given on the command line
func applyFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "mute":
			cfg.AudioEnabled = !*muteFlag
		}
	})
}

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mKLONDIKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(flag.CommandLine, cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()

	g, err := game.New(cfg)
	if err != nil {
		panic(err)
	}
	w, h := screen.Size()
	g.Resize(w, h)

	renderer := render.NewRenderer(screen)
	g.Register(renderer)

	cues := audio.NewCues(audio.FromConfig(cfg))
	if err := cues.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		if !errors.Is(err, audio.ErrDisabled) {
			log.Printf("Audio initialization failed: %v", err)
		}
	} else {
		defer cues.Cleanup()
	}
	g.Register(cues)

	run(screen, g, renderer, cfg.TickInterval)
}

func run(screen tcell.Screen, g *game.Game, renderer *render.Renderer, tick time.Duration) {
	frameTicker := time.NewTicker(tick)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	sampler := input.NewSampler()
	for {
		select {
		case ev := <-eventChan:
			if sampler.Fold(ev) {
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyAction(ev.Key(), ev.Rune()) {
				case actionQuit:
					return
				case actionNewDeal:
					if err := g.NewDeal(time.Now().UnixNano()); err != nil {
						log.Printf("New deal failed: %v", err)
					}
				}
			case *tcell.EventResize:
				w, h := screen.Size()
				g.Resize(w, h)
				screen.Sync()
			}

		case <-frameTicker.C:
			g.Tick(sampler.Sample())
			renderer.Draw(g)
		}
	}
}
