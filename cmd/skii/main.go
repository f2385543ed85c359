package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/audio"
	"github.com/lixenwraith/skii/config"
	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/engine"
	"github.com/lixenwraith/skii/input"
	"github.com/lixenwraith/skii/loader"
	"github.com/lixenwraith/skii/render"
)

var version = "dev"

var (
	configFlag = flag.String("config", "", "TOML config file overlaying the defaults")
	assetsFlag = flag.String("assets", "", "Directory of JSON descriptors (default: built-in set)")
	seedFlag   = flag.String("seed", "", "Course seed; same seed, same course")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the log directory")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, mono")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skii: %v\n", err)
		os.Exit(1)
	}

	log, logFile := core.SetupLogging(cfg.Debug.LogDir, cfg.Debug.Log)
	if logFile != nil {
		defer logFile.Close()
	}
	flushSentry := core.SetupSentry(cfg.Telemetry.SentryDSN, "skii@"+version, log)
	defer flushSentry()

	// Catalog problems are fatal before the screen is taken over
	cat, err := loader.Load(*assetsFlag)
	if err != nil {
		log.WithError(err).Error("load descriptors")
		fmt.Fprintf(os.Stderr, "skii: %v\n", err)
		os.Exit(1)
	}
	keyTable, err := input.LoadKeyFile(cfg.Input.Keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skii: %v\n", err)
		os.Exit(1)
	}

	if cfg.Render.Color == config.ColorTrueColor {
		os.Setenv("COLORTERM", "truecolor")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)

	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	session := engine.NewGame(cat, cfg, log)

	sound := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		} else {
			defer sound.Cleanup()
			session.AddListener(sound)
		}
	}

	run(screen, session, sound, keyTable, cfg, log)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return config.Config{}, err
	}
	if *seedFlag != "" {
		cfg.Generation.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug.Log = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *colorFlag != "" {
		cfg.Render.Color = *colorFlag
	}
	return cfg, cfg.Validate()
}

// run is the frame loop: input events are handled as they arrive, and every
// frame banks real time into the session before drawing
func run(screen tcell.Screen, session *engine.Session, sound *audio.SoundManager, kt *input.KeyTable, cfg config.Config, log logrus.FieldLogger) {
	clock := engine.SystemClock{}
	machine := input.NewMachine(kt, input.NewKeys(clock, cfg.HoldWindow()))
	renderer := render.NewTerminalRenderer(screen, session.World.Catalog(), cfg.Sim.CameraOffset, cfg.Render.Color == config.ColorMono)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(session.Step())
	defer frameTicker.Stop()
	stopwatch := engine.NewStopwatch(clock)

	for {
		select {
		case ev := <-events:
			switch machine.Process(ev) {
			case input.IntentQuit:
				log.WithFields(logrus.Fields{
					"runs": session.Runs(),
					"best": session.Best(),
				}).Info("quit")
				return
			case input.IntentRestart:
				if session.Restart() {
					machine.Keys().Clear()
					log.WithField("run", session.Runs()).Debug("restart")
				}
			case input.IntentToggleMute:
				sound.ToggleMute()
			case input.IntentResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			session.Advance(stopwatch.Lap(), machine.Keys().Steering())
			renderer.RenderFrame(session)
		}
	}
}
