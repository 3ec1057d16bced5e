// Package sound implements the timer's cue sink with desktop
// notifications and system beeps.
package sound

import (
	"github.com/gen2brain/beeep"

	"github.com/arpele/tempo/internal/config"
	"github.com/arpele/tempo/internal/domain"
	"github.com/arpele/tempo/internal/ports"
)

// Beep frequencies per cue. The warning tick sits an octave above the
// session-start tone so it cuts through.
const (
	freqFocus   = 587.3
	freqRelax   = 440.0
	freqPause   = 220.0
	freqWarning = 880.0

	beepMillis = 150
)

// Player plays timer cues through the desktop environment. Every call is
// fire-and-forget: playback runs off the caller's goroutine and errors are
// discarded, so a missing audio capability can never affect the timer.
type Player struct {
	cfg *config.Config
}

// New creates a player reading live preferences from the given config.
func New(cfg *config.Config) *Player {
	return &Player{cfg: cfg}
}

// Ensure Player implements ports.Cues.
var _ ports.Cues = (*Player)(nil)

// PlayModeSwitch announces a mode change with a desktop notification.
func (p *Player) PlayModeSwitch(tone string) {
	if !p.notificationsEnabled() {
		return
	}
	var title, message string
	switch tone {
	case "focus":
		title, message = "Focus", "Time to focus."
	case "relax":
		title, message = "Relax", "Take a breather."
	case "waiting":
		title, message = "Cycle finished", "Press Continue when you're ready."
	case "ready":
		title, message = "Plan finished", "All cycles complete. Well done!"
	default:
		return
	}
	go func() {
		_ = beeep.Notify(title, message, "")
	}()
}

// PlaySessionStart plays the phase start tone.
func (p *Player) PlaySessionStart(phase domain.Phase) {
	freq := freqFocus
	if phase == domain.PhaseRelax {
		freq = freqRelax
	}
	p.beep(freq)
}

// PlayPause plays the pause tone.
func (p *Player) PlayPause() {
	p.beep(freqPause)
}

// PlayWarningTick plays one warning blip.
func (p *Player) PlayWarningTick() {
	p.beep(freqWarning)
}

// StopWarningTick is a no-op: beeps are one-shot, there is nothing to stop.
func (p *Player) StopWarningTick() {}

// StartAmbientLoop is a no-op: the terminal environment has no ambient
// audio channel. The method exists so richer sinks can honor the cue.
func (p *Player) StartAmbientLoop(domain.Phase) {}

// StopAmbientLoop is a no-op, see StartAmbientLoop.
func (p *Player) StopAmbientLoop() {}

func (p *Player) beep(freq float64) {
	if !p.soundEnabled() {
		return
	}
	go func() {
		_ = beeep.Beep(freq, beepMillis)
	}()
}

func (p *Player) soundEnabled() bool {
	return p.cfg != nil && p.cfg.GetPreferences().Sound
}

func (p *Player) notificationsEnabled() bool {
	return p.cfg != nil && p.cfg.GetPreferences().Notifications
}
