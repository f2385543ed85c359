package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skii/core"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100
	crashSoundDurationMs    = 450
	chimeNoteDurationMs     = 90

	// carveFullSpeed is the skier speed in cells/s at which the carve loop peaks
	carveFullSpeed = 8.0
	// carveSilentGain mutes the loop below this gain instead of playing a whisper
	carveSilentGain = 0.02

	chimeLowHz  = 523.25 // C5
	chimeHighHz = 783.99 // G5
	chimeVolume = -2.0   // base-2 exponent, quarter amplitude
)

// SoundManager plays the game's sound feedback. Every method is safe to call
// before Initialize or after a failed Initialize; the game runs silent then.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	carveCtrl   *beep.Ctrl
	carveVolume *effects.Volume
	initialized bool
	muted       bool
	// reportErr receives sounds that failed to build
	reportErr func(error)
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		reportErr: func(err error) {
			core.ReportError(err, "audio")
		},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.carveCtrl != nil {
		sm.carveCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.carveCtrl = nil
	sm.carveVolume = nil
	sm.initialized = false
}

// SetMuted silences or restores all sound
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized && sm.carveCtrl != nil && muted {
		speaker.Lock()
		sm.carveCtrl.Paused = true
		speaker.Unlock()
	}
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCarve starts or updates the looping carve sound; loudness follows speed
func (sm *SoundManager) PlayCarve(speed float32) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	vol, silent := carveLevel(speed)

	speaker.Lock()
	defer speaker.Unlock()

	if sm.carveCtrl == nil {
		sm.carveVolume = &effects.Volume{
			Streamer: NewCarveGenerator(sampleRate),
			Base:     2,
		}
		sm.carveCtrl = &beep.Ctrl{Streamer: sm.carveVolume}
		sm.mixer.Add(sm.carveCtrl)
	}
	sm.carveVolume.Volume = vol
	sm.carveVolume.Silent = silent
	sm.carveCtrl.Paused = false
}

// StopCarve pauses the carve loop
func (sm *SoundManager) StopCarve() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.carveCtrl == nil {
		return
	}
	speaker.Lock()
	sm.carveCtrl.Paused = true
	speaker.Unlock()
}

// PlayCrash plays a short noise burst with a low thud
func (sm *SoundManager) PlayCrash() {
	sm.play(func() (beep.Streamer, error) {
		return beep.Take(sampleRate.N(time.Millisecond*crashSoundDurationMs), NewCrashGenerator(sampleRate)), nil
	})
}

// PlayRestart plays a rising two-note chime
func (sm *SoundManager) PlayRestart() {
	sm.play(func() (beep.Streamer, error) {
		low, err := generators.SineTone(sampleRate, chimeLowHz)
		if err != nil {
			return nil, err
		}
		high, err := generators.SineTone(sampleRate, chimeHighHz)
		if err != nil {
			return nil, err
		}
		n := sampleRate.N(time.Millisecond * chimeNoteDurationMs)
		return &effects.Volume{
			Streamer: beep.Seq(beep.Take(n, low), beep.Take(n, high)),
			Base:     2,
			Volume:   chimeVolume,
		}, nil
	})
}

// play adds a one-shot streamer to the mixer
func (sm *SoundManager) play(build func() (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s, err := build()
	if err != nil {
		sm.reportErr(err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnTick follows the skier's speed with the carve loop
func (sm *SoundManager) OnTick(speed float32) { sm.PlayCarve(speed) }

// OnCrash silences the carve loop and plays the crash
func (sm *SoundManager) OnCrash(float32) {
	sm.StopCarve()
	sm.PlayCrash()
}

// OnRestart plays the restart chime
func (sm *SoundManager) OnRestart() { sm.PlayRestart() }

// carveLevel maps speed to a base-2 volume exponent for effects.Volume
func carveLevel(speed float32) (volume float64, silent bool) {
	gain := float64(speed) / carveFullSpeed
	if gain > 1 {
		gain = 1
	}
	if gain < carveSilentGain {
		return 0, true
	}
	return math.Log2(gain), false
}
