package audio

import (
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/lurkdash/config"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Notifier plays a short chime when the message feed grows
// Disabled or uninitialized notifiers track counts silently
type Notifier struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	play        func(beep.Streamer)
	initialized bool
	seen        bool   // First observation only records a baseline
	lastTotal   uint64 // Messages ever received as of the last observation
	chimes      uint64
	log         logrus.FieldLogger
}

// NewNotifier creates a notifier, call Initialize to open the audio device
func NewNotifier(cfg config.AudioConfig, logger logrus.FieldLogger) *Notifier {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	n := &Notifier{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   logger,
	}
	n.play = func(s beep.Streamer) {
		speaker.Lock()
		n.mixer.Add(s)
		speaker.Unlock()
	}
	return n
}

// Initialize sets up the speaker when audio is enabled
// Failure leaves the notifier silent; the dashboard works without audio
func (n *Notifier) Initialize() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.initialized || !n.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(n.mixer)
	n.initialized = true
	n.log.WithField("tone_hz", n.cfg.ToneHz).Debug("audio initialized")
	return nil
}

// Cleanup stops pending chimes
func (n *Notifier) Cleanup() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.initialized {
		return
	}

	speaker.Lock()
	n.mixer.Clear()
	speaker.Unlock()

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	n.initialized = false
}

// Observe takes the running message total after each frame and chimes once if it grew
func (n *Notifier) Observe(total uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	grew := n.seen && total > n.lastTotal
	n.seen = true
	n.lastTotal = total

	if !grew || !n.initialized {
		return
	}

	n.chimes++
	n.play(n.chime())
}

// Chimes returns how many chimes were played
func (n *Notifier) Chimes() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.chimes
}

func (n *Notifier) chime() beep.Streamer {
	tone := &effects.Volume{
		Streamer: NewChimeGenerator(sampleRate, n.cfg.ToneHz),
		Base:     2,
		Volume:   n.cfg.Volume,
	}
	return beep.Take(sampleRate.N(n.cfg.Duration.Duration), tone)
}
