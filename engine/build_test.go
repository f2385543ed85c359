package engine

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/config"
	"github.com/lixenwraith/skii/loader"
)

func TestNewGameSeedReproducible(t *testing.T) {
	cat, err := loader.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Default()
	cfg.Generation.Seed = "first chair"

	a := NewGame(cat, cfg, log)
	b := NewGame(cat, cfg, log)
	for i := 0; i < 20; i++ {
		a.World.Scroll(4)
		b.World.Scroll(4)
	}
	if a.World.Fingerprint() != b.World.Fingerprint() {
		t.Error("same seed string produced different courses")
	}

	if a.World.Width() != cfg.Grid.Width || a.World.Height() != cfg.Grid.Height {
		t.Errorf("grid = %dx%d, want %dx%d", a.World.Width(), a.World.Height(), cfg.Grid.Width, cfg.Grid.Height)
	}
	if a.Params() != ParamsFrom(cfg) {
		t.Errorf("params = %+v", a.Params())
	}
}
