package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

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
	assetsFlag = flag.String("assets", "", "Directory of JSON descriptors and textures (default: built-in set)")
	seedFlag   = flag.String("seed", "", "Course seed; same seed, same course")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under the log directory")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skii-gl: %v\n", err)
		os.Exit(1)
	}

	log, logFile := core.SetupLogging(cfg.Debug.LogDir, cfg.Debug.Log)
	if logFile != nil {
		defer logFile.Close()
	}
	flushSentry := core.SetupSentry(cfg.Telemetry.SentryDSN, "skii-gl@"+version, log)
	defer flushSentry()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cat, err := loader.Load(*assetsFlag)
	if err != nil {
		log.WithError(err).Error("load descriptors")
		fmt.Fprintf(os.Stderr, "skii-gl: %v\n", err)
		os.Exit(1)
	}
	keyTable, err := input.LoadKeyFile(cfg.Input.Keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skii-gl: %v\n", err)
		os.Exit(1)
	}
	fsys, err := descriptorFS(*assetsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skii-gl: %v\n", err)
		os.Exit(1)
	}

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

	view := render.Viewport{
		Width:        cfg.Render.WindowWidth,
		Height:       cfg.Render.WindowHeight,
		Scale:        cfg.Render.Scale,
		CellPx:       float32(cfg.Render.CellPx),
		CameraOffset: cfg.Sim.CameraOffset,
	}
	sprites := LoadSprites(cat, fsys, cfg.Render.CellPx, log)

	ebiten.SetWindowSize(view.Width, view.Height)
	ebiten.SetWindowTitle("skii")
	ebiten.SetTPS(cfg.Sim.TickRate)

	game := NewGame(session, sprites, NewBindings(keyTable), sound, view, log)
	if err := ebiten.RunGame(game); err != nil {
		core.ReportError(err, "gl game loop")
		log.WithError(err).Error("game loop")
		fmt.Fprintf(os.Stderr, "skii-gl: %v\n", err)
		os.Exit(1)
	}
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
	return cfg, cfg.Validate()
}
