package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/config"
	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/physics"
	"github.com/lixenwraith/skii/world"
)

// Params drives the fixed-timestep loop around a World
type Params struct {
	Width, Height int
	TickRate      int
	TurnRate      float32
	TurnDamping   float32
	// ScrollTrigger is the in-frame depth past which the course scrolls
	ScrollTrigger float32
	// CameraOffset is how many rows stay visible behind the skier after a scroll
	CameraOffset     float32
	MaxTicksPerFrame int
}

// ParamsFrom extracts session parameters from the game configuration
func ParamsFrom(cfg config.Config) Params {
	return Params{
		Width:            cfg.Grid.Width,
		Height:           cfg.Grid.Height,
		TickRate:         cfg.Sim.TickRate,
		TurnRate:         cfg.Sim.TurnRate,
		TurnDamping:      cfg.Sim.TurnDamping,
		ScrollTrigger:    cfg.Sim.ScrollTrigger,
		CameraOffset:     cfg.Sim.CameraOffset,
		MaxTicksPerFrame: cfg.Sim.MaxTicksPerFrame,
	}
}

// Listener observes session events; audio implements it
type Listener interface {
	// OnTick is called after every live tick with the skier's speed
	OnTick(speed float32)
	// OnCrash is called once when a run ends
	OnCrash(distance float32)
	// OnRestart is called after a new run begins
	OnRestart()
}

// Session owns one World and steps it at a fixed rate independent of frame rate.
// Not safe for concurrent use; renderers read World between Advance calls.
type Session struct {
	World *world.World
	Dead  bool

	params    Params
	dt        float32
	step      time.Duration
	acc       time.Duration
	best      float32
	ticks     uint64
	runs      int
	listeners []Listener
	log       logrus.FieldLogger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithSessionLogger routes session diagnostics to log
func WithSessionLogger(log logrus.FieldLogger) SessionOption {
	return func(s *Session) { s.log = log }
}

// WithListener registers a listener at construction
func WithListener(l Listener) SessionOption {
	return func(s *Session) { s.listeners = append(s.listeners, l) }
}

// NewSession resets w to a fresh run sized by p
func NewSession(w *world.World, p Params, opts ...SessionOption) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	if p.MaxTicksPerFrame < 1 {
		p.MaxTicksPerFrame = 1
	}
	s := &Session{
		World:  w,
		params: p,
		dt:     1 / float32(p.TickRate),
		step:   time.Second / time.Duration(p.TickRate),
		runs:   1,
		log:    discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	w.Reset(p.Width, p.Height)
	return s
}

// AddListener registers l for subsequent events
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Advance banks elapsed real time and runs as many fixed ticks as it covers,
// up to MaxTicksPerFrame. Backlog beyond the cap is dropped so a stalled frame
// cannot snowball. Returns the number of ticks run.
func (s *Session) Advance(elapsed time.Duration, steer core.Steering) int {
	if elapsed > 0 {
		s.acc += elapsed
	}

	n := 0
	for s.acc >= s.step && n < s.params.MaxTicksPerFrame {
		s.acc -= s.step
		s.Tick(steer)
		n++
	}
	if s.acc >= s.step {
		s.log.WithFields(logrus.Fields{
			"backlog": s.acc,
			"ticks":   n,
		}).Debug("frame budget exceeded, dropping backlog")
		s.acc = 0
	}
	return n
}

// Tick runs exactly one fixed step: steering torque, scroll, then physics.
// A dead run is frozen until Restart.
func (s *Session) Tick(steer core.Steering) {
	if s.Dead {
		return
	}
	s.ticks++
	w := s.World

	physics.ApplySteering(&w.Player, steer, s.params.TurnRate, s.params.TurnDamping, s.dt)

	if w.Player.Position.Y() > s.params.ScrollTrigger {
		w.Scroll(int(s.params.ScrollTrigger - s.params.CameraOffset))
	}

	s.Dead = w.Update(s.dt)
	if !s.Dead {
		speed := physics.Speed(&w.Player)
		for _, l := range s.listeners {
			l.OnTick(speed)
		}
		return
	}

	dist := w.Distance()
	if dist > s.best {
		s.best = dist
	}
	s.log.WithFields(logrus.Fields{
		"run":      s.runs,
		"distance": dist,
		"best":     s.best,
		"ticks":    s.ticks,
	}).Info("run ended")
	for _, l := range s.listeners {
		l.OnCrash(dist)
	}
}

// Restart begins a new run; it does nothing while the current run is alive
func (s *Session) Restart() bool {
	if !s.Dead {
		return false
	}
	s.World.Reset(s.params.Width, s.params.Height)
	s.Dead = false
	s.acc = 0
	s.runs++
	for _, l := range s.listeners {
		l.OnRestart()
	}
	return true
}

// Distance is the current run's downhill distance
func (s *Session) Distance() float32 { return s.World.Distance() }

// Best is the longest finished run this session
func (s *Session) Best() float32 { return s.best }

// Runs counts runs started, including the current one
func (s *Session) Runs() int { return s.runs }

// Ticks counts live ticks across all runs
func (s *Session) Ticks() uint64 { return s.ticks }

// Step is the fixed tick duration
func (s *Session) Step() time.Duration { return s.step }

// Params returns the session parameters
func (s *Session) Params() Params { return s.params }
