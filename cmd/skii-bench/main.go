package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/config"
	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/engine"
	"github.com/lixenwraith/skii/loader"
	"github.com/lixenwraith/skii/render"
)

var (
	runs     = flag.Int("runs", 200, "Autopilot runs for the distance summary")
	maxTicks = flag.Int("max-ticks", 60*60*5, "Tick limit per autopilot run")
	seed     = flag.String("seed", "bench", "Course seed")
)

func main() {
	flag.Parse()

	cat, err := loader.LoadDefault()
	if err != nil {
		panic(err)
	}
	cfg := config.Default()
	cfg.Generation.Seed = *seed

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	newSession := func() *engine.Session { return engine.NewGame(cat, cfg, quiet) }

	benchmarks := []struct {
		name string
		fn   func(b *testing.B)
	}{
		{"Session.Tick (autopilot)", func(b *testing.B) {
			s := newSession()
			for b.Loop() {
				if s.Dead {
					s.Restart()
				}
				s.Tick(autopilot(s))
			}
		}},
		{"World.Scroll (1 row)", func(b *testing.B) {
			s := newSession()
			for b.Loop() {
				s.World.Scroll(1)
			}
		}},
		{"World.Fingerprint", func(b *testing.B) {
			s := newSession()
			for b.Loop() {
				_ = s.World.Fingerprint()
			}
		}},
		{"TerminalRenderer.RenderFrame 80x24", func(b *testing.B) {
			screen := tcell.NewSimulationScreen("UTF-8")
			if err := screen.Init(); err != nil {
				b.Fatal(err)
			}
			defer screen.Fini()
			screen.SetSize(80, 24)
			s := newSession()
			r := render.NewTerminalRenderer(screen, cat, cfg.Sim.CameraOffset, false)
			for b.Loop() {
				r.RenderFrame(s)
			}
		}},
	}

	fmt.Printf("%-40s %12s\n", "Name", "ns/op")
	fmt.Println("----------------------------------------------------")
	for _, bm := range benchmarks {
		result := testing.Benchmark(bm.fn)
		fmt.Printf("%-40s %10.1f ns\n", bm.name, float64(result.T.Nanoseconds())/float64(result.N))
	}

	summarize(newSession(), *runs, *maxTicks)
}

// autopilot steers back toward the course center
func autopilot(s *engine.Session) core.Steering {
	p := s.World.Player
	mid := float32(s.World.Width()) / 2
	drift := p.Position.X() - mid + p.Velocity.X()*0.5
	switch {
	case drift > 0.25:
		return core.SteerLeft
	case drift < -0.25:
		return core.SteerRight
	default:
		return core.SteerNeutral
	}
}

// summarize plays autopilot runs to the tick limit or a crash and reports distance
func summarize(s *engine.Session, runs, limit int) {
	start := time.Now()
	var total float32
	crashes := 0
	for i := 0; i < runs; i++ {
		s.Dead = true
		s.Restart()
		for t := 0; t < limit && !s.Dead; t++ {
			s.Tick(autopilot(s))
		}
		if s.Dead {
			crashes++
		}
		total += s.Distance()
	}
	elapsed := time.Since(start)

	fmt.Printf("\nAutopilot Results:\n")
	fmt.Printf("  Runs:         %d (%d crashed)\n", runs, crashes)
	fmt.Printf("  Best:         %.1f\n", s.Best())
	fmt.Printf("  Avg Distance: %.1f\n", total/float32(runs))
	fmt.Printf("  Total Ticks:  %d\n", s.Ticks())
	fmt.Printf("  Total Time:   %v\n", elapsed)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}
