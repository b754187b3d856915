// Package audio synthesizes every match sound on the fly. No sample
// files ship with the binary; effects and music come from generator
// streamers mixed into one speaker.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	paddleHitDuration = 80 * time.Millisecond
	wallHitDuration   = 60 * time.Millisecond
	scoreDuration     = 350 * time.Millisecond
)

// Player manages the speaker, the background music and one-shot
// effects. All methods are safe to call before Init; they simply do
// nothing until the speaker is up.
type Player struct {
	mu          sync.Mutex
	log         *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	muted       bool
}

// NewPlayer creates a player. The logger may be nil.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		log:   logger,
		mixer: &beep.Mixer{},
	}
}

// Init sets up the audio system. Safe to call twice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Close stops all sounds. The speaker itself stays open; an empty
// mixer streams silence.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.music = nil
	p.initialized = false
}

// StartMusic begins the background jukebox. Calling it again while
// music plays is a no-op.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music != nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate), Paused: p.muted}
	p.music = ctrl

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()

	p.log.Debug("music started")
}

// PlayPaddleHit plays a short high blip.
func (p *Player) PlayPaddleHit() {
	p.playEffect(paddleHitDuration, NewBlipGenerator(sampleRate, 440))
}

// PlayWallHit plays a short low blip.
func (p *Player) PlayWallHit() {
	p.playEffect(wallHitDuration, NewBlipGenerator(sampleRate, 220))
}

// PlayScore plays a rising two-note chime.
func (p *Player) PlayScore() {
	p.playEffect(scoreDuration, NewChimeGenerator(sampleRate))
}

// playEffect mixes in a one-shot streamer clipped to the duration.
func (p *Player) playEffect(d time.Duration, g beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	s := beep.Take(sampleRate.N(d), g)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences effects and pauses the music.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMutedLocked(muted)
}

// ToggleMuted flips the mute state and returns the new value.
func (p *Player) ToggleMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMutedLocked(!p.muted)
	return p.muted
}

// Muted reports the current mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) setMutedLocked(muted bool) {
	p.muted = muted
	if p.initialized && p.music != nil {
		speaker.Lock()
		p.music.Paused = muted
		speaker.Unlock()
	}
}
